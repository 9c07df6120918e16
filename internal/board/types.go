package board

import (
	"bytes"
	"encoding/json"
)

// Task stages understood by the report aggregator.
const (
	StageTodo  = "todo"
	StageDoing = "doing"
	StageDone  = "done"
)

// Task is a unit of work on a scrum board. The wire name for the description
// field is "task".
type Task struct {
	ID          string `json:"id"`
	ScrumID     string `json:"scrum_id"`
	Description string `json:"task"`
	Assignee    string `json:"assignee"`
	Stage       string `json:"stage"`
	Reward      Reward `json:"reward"`
	Notes       string `json:"notes,omitempty"`
}

// ScrumBoard is a named collection of tasks owned by the remote service.
type ScrumBoard struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	PublicAssigning   bool   `json:"public_assigning"`
	PublicTasks       bool   `json:"public_tasks"`
	PublicDeleteTasks bool   `json:"public_delete_tasks"`
	Wallet            string `json:"wallet,omitempty"`
}

// TaskPage is the canonical task-list shape. The list endpoint answers with
// either an envelope {"tasks": [...], "total": n} or a bare array; both are
// normalized here, right at the transport boundary, so consumers only ever
// see one representation.
type TaskPage struct {
	Tasks []Task
	Total int
}

type taskEnvelope struct {
	Tasks []Task `json:"tasks"`
	Total *int   `json:"total"`
}

func (p *TaskPage) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var tasks []Task
		if err := json.Unmarshal(data, &tasks); err != nil {
			return err
		}
		*p = TaskPage{Tasks: tasks, Total: len(tasks)}
		return nil
	}

	var env taskEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	total := len(env.Tasks)
	if env.Total != nil {
		total = *env.Total
	}
	*p = TaskPage{Tasks: env.Tasks, Total: total}
	return nil
}

var _ json.Unmarshaler = (*TaskPage)(nil)
