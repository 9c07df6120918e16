package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/satsboard/satsboard/internal/board"
)

type CSVExporter struct {
	OutputDir string
}

func NewCSVExporter(outputDir string) *CSVExporter {
	return &CSVExporter{OutputDir: outputDir}
}

// Export writes two files: a flat task list and a dashboard with per-stage
// counts and reward totals.
func (e *CSVExporter) Export(rep SprintReport) error {
	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")

	if err := e.exportTaskList(rep, timestamp); err != nil {
		return fmt.Errorf("failed to export task list: %w", err)
	}

	if err := e.exportDashboard(rep, timestamp); err != nil {
		return fmt.Errorf("failed to export dashboard: %w", err)
	}

	return nil
}

func (e *CSVExporter) exportTaskList(rep SprintReport, timestamp string) error {
	filename := filepath.Join(e.OutputDir, fmt.Sprintf("sprint_%s_%s_task_list.csv", rep.Board.ID, timestamp))
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"#",
		"Task",
		"Assignee",
		"Stage",
		"Reward (sats)",
		"Notes",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	i := 0
	for _, bucket := range [][]board.Task{rep.Todo, rep.Doing, rep.Done} {
		for _, task := range bucket {
			i++
			row := []string{
				strconv.Itoa(i),
				task.Description,
				task.Assignee,
				StageLabel(task.Stage),
				formatReward(task.Reward),
				task.Notes,
			}
			if err := writer.Write(row); err != nil {
				return err
			}
		}
	}

	return nil
}

func (e *CSVExporter) exportDashboard(rep SprintReport, timestamp string) error {
	filename := filepath.Join(e.OutputDir, fmt.Sprintf("sprint_%s_%s_dashboard.csv", rep.Board.ID, timestamp))
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	rows := [][]string{
		{"Board:", rep.Board.Name},
		{"Board ID:", rep.Board.ID},
		{""},
		{"Stage", "Tasks"},
		{StageLabel(board.StageTodo), strconv.Itoa(len(rep.Todo))},
		{StageLabel(board.StageDoing), strconv.Itoa(len(rep.Doing))},
		{StageLabel(board.StageDone), strconv.Itoa(len(rep.Done))},
		{"Total", strconv.Itoa(rep.TotalTasks)},
		{""},
		{"Rewards (sats)", ""},
		{"Total", strconv.FormatInt(rep.Rewards.Total, 10)},
		{"Completed", strconv.FormatInt(rep.Rewards.Completed, 10)},
		{"Pending", strconv.FormatInt(rep.Rewards.Pending, 10)},
		{""},
		{"Assignees", strconv.Itoa(len(rep.Assignees))},
	}

	for _, a := range rep.Assignees {
		rows = append(rows, []string{"", a})
	}

	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func formatReward(r board.Reward) string {
	if !r.Specified() || r.IsNull() {
		return ""
	}
	return strconv.FormatInt(r.Sats(), 10)
}
