package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/satsboard/satsboard/internal/board"
)

type ExcelExporter struct {
	OutputDir string
}

func NewExcelExporter(outputDir string) *ExcelExporter {
	return &ExcelExporter{OutputDir: outputDir}
}

// Export writes a workbook with a Dashboard sheet plus one sheet per stage.
func (e *ExcelExporter) Export(rep SprintReport) error {
	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := filepath.Join(e.OutputDir, fmt.Sprintf("sprint_%s_%s.xlsx", rep.Board.ID, timestamp))

	f := excelize.NewFile()
	defer f.Close()

	if err := e.createDashboardSheet(f, "Dashboard", rep); err != nil {
		return fmt.Errorf("failed to create dashboard: %w", err)
	}

	stages := []struct {
		name  string
		tasks []board.Task
	}{
		{StageLabel(board.StageTodo), rep.Todo},
		{StageLabel(board.StageDoing), rep.Doing},
		{StageLabel(board.StageDone), rep.Done},
	}
	for _, stage := range stages {
		if err := e.createStageSheet(f, stage.name, stage.tasks); err != nil {
			return fmt.Errorf("failed to create sheet for %s: %w", stage.name, err)
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	if idx, err := f.GetSheetIndex("Dashboard"); err == nil {
		f.SetActiveSheet(idx)
	}

	return f.SaveAs(filename)
}

func (e *ExcelExporter) createDashboardSheet(f *excelize.File, sheetName string, rep SprintReport) error {
	if _, err := f.NewSheet(sheetName); err != nil {
		return err
	}

	rows := [][]any{
		{"Board", rep.Board.Name},
		{"Board ID", rep.Board.ID},
		{"Generated", time.Now().Format("2006-01-02 15:04:05")},
		{},
		{"Stage", "Tasks"},
		{StageLabel(board.StageTodo), len(rep.Todo)},
		{StageLabel(board.StageDoing), len(rep.Doing)},
		{StageLabel(board.StageDone), len(rep.Done)},
		{"Total", rep.TotalTasks},
		{},
		{"Rewards (sats)"},
		{"Total", rep.Rewards.Total},
		{"Completed", rep.Rewards.Completed},
		{"Pending", rep.Rewards.Pending},
		{},
		{"Assignees", len(rep.Assignees)},
	}
	for _, a := range rep.Assignees {
		rows = append(rows, []any{"", a})
	}

	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return err
			}
		}
	}

	return f.SetColWidth(sheetName, "A", "B", 24)
}

func (e *ExcelExporter) createStageSheet(f *excelize.File, sheetName string, tasks []board.Task) error {
	if _, err := f.NewSheet(sheetName); err != nil {
		return err
	}

	header := []any{"#", "Task", "Assignee", "Reward (sats)", "Notes"}
	for j, value := range header {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return err
		}
	}

	for i, task := range tasks {
		row := []any{i + 1, task.Description, task.Assignee, formatReward(task.Reward), task.Notes}
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return err
			}
		}
	}

	return f.SetColWidth(sheetName, "B", "E", 32)
}
