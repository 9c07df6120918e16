package report

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/satsboard/satsboard/internal/board"
)

// Rewards summarizes satoshi amounts over a task list. Pending is always
// Total minus Completed by construction.
type Rewards struct {
	Total     int64 `json:"total"`
	Completed int64 `json:"completed"`
	Pending   int64 `json:"pending"`
}

// SprintReport is the derived summary of one board's tasks. It is recomputed
// on every call and never persisted.
type SprintReport struct {
	Board      board.ScrumBoard `json:"board"`
	TotalTasks int              `json:"total_tasks"`
	Todo       []board.Task     `json:"todo"`
	Doing      []board.Task     `json:"doing"`
	Done       []board.Task     `json:"done"`
	Assignees  []string         `json:"assignees"`
	Rewards    Rewards          `json:"rewards"`
}

// Aggregate builds a SprintReport from a board and its normalized task page.
// It is pure: no I/O, no hidden state, and it cannot fail — malformed rewards
// were already coerced to "unspecified" at the transport boundary and sum as
// zero here. Tasks keep their input order inside each stage bucket; tasks
// with an unrecognized stage count toward TotalTasks but land in no bucket.
func Aggregate(b board.ScrumBoard, page board.TaskPage) SprintReport {
	rep := SprintReport{
		Board:      b,
		TotalTasks: page.Total,
		Todo:       []board.Task{},
		Doing:      []board.Task{},
		Done:       []board.Task{},
		Assignees:  []string{},
	}

	seen := make(map[string]bool)
	for _, t := range page.Tasks {
		if t.Assignee != "" && !seen[t.Assignee] {
			seen[t.Assignee] = true
			rep.Assignees = append(rep.Assignees, t.Assignee)
		}

		sats := t.Reward.Sats()
		rep.Rewards.Total += sats

		switch t.Stage {
		case board.StageTodo:
			rep.Todo = append(rep.Todo, t)
		case board.StageDoing:
			rep.Doing = append(rep.Doing, t)
		case board.StageDone:
			rep.Done = append(rep.Done, t)
			rep.Rewards.Completed += sats
		}
	}

	rep.Rewards.Pending = rep.Rewards.Total - rep.Rewards.Completed
	return rep
}

var titleCaser = cases.Title(language.English)

// StageLabel returns the display form of a stage ("todo" -> "Todo").
func StageLabel(stage string) string {
	return titleCaser.String(stage)
}
