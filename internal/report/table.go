package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/satsboard/satsboard/internal/board"
)

// RenderTable writes the sprint report to w as a terminal table followed by
// the reward summary.
func RenderTable(w io.Writer, rep SprintReport) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetTitle("%s (%d tasks)", rep.Board.Name, rep.TotalTasks)
	tw.AppendHeader(table.Row{"Stage", "Task", "Assignee", "Reward (sats)"})

	for _, bucket := range [][]board.Task{rep.Todo, rep.Doing, rep.Done} {
		for _, t := range bucket {
			tw.AppendRow(table.Row{StageLabel(t.Stage), t.Description, t.Assignee, formatReward(t.Reward)})
		}
		if len(bucket) > 0 {
			tw.AppendSeparator()
		}
	}

	tw.AppendFooter(table.Row{"", "", "Total", rep.Rewards.Total})
	tw.AppendFooter(table.Row{"", "", "Completed", rep.Rewards.Completed})
	tw.AppendFooter(table.Row{"", "", "Pending", rep.Rewards.Pending})
	tw.Render()

	if len(rep.Assignees) > 0 {
		fmt.Fprintf(w, "Assignees: %v\n", rep.Assignees)
	}
}
