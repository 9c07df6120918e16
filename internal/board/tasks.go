package board

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// CreateTaskRequest holds the caller-supplied fields for a new task. New
// tasks always start in the todo stage. An unspecified Reward is omitted
// from the payload entirely; explicit null and explicit 0 go out verbatim.
type CreateTaskRequest struct {
	ScrumID     string
	Description string
	Assignee    string
	Reward      Reward
	Notes       string
}

type createTaskPayload struct {
	Description string `json:"task"`
	ScrumID     string `json:"scrum_id"`
	Assignee    string `json:"assignee"`
	Stage       string `json:"stage"`
	Reward      Reward `json:"reward,omitzero"`
	Notes       string `json:"notes,omitempty"`
}

// CreateTask creates a task on a board and returns the record the service
// minted.
func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error) {
	payload := createTaskPayload{
		Description: req.Description,
		ScrumID:     req.ScrumID,
		Assignee:    req.Assignee,
		Stage:       StageTodo,
		Reward:      req.Reward,
		Notes:       req.Notes,
	}

	var created Task
	if err := c.do(ctx, "create task", http.MethodPost, "/tasks", nil, payload, &created); err != nil {
		return nil, err
	}

	c.logger.Info().Str("task", created.ID).Str("board", created.ScrumID).Msg("task created")
	return &created, nil
}

// GetTask fetches a task by id.
func (c *Client) GetTask(ctx context.Context, id string) (*Task, error) {
	var t Task
	op := fmt.Sprintf("get task %s", id)
	if err := c.do(ctx, op, http.MethodGet, "/tasks/"+url.PathEscape(id), nil, nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTasks returns the tasks of one board as a normalized TaskPage,
// whichever envelope the service answers with. Zero limit and offset are
// omitted from the query.
func (c *Client) ListTasks(ctx context.Context, scrumID string, limit, offset int) (TaskPage, error) {
	query := url.Values{"scrum_id": {scrumID}}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		query.Set("offset", strconv.Itoa(offset))
	}

	var page TaskPage
	if err := c.do(ctx, "list tasks", http.MethodGet, "/tasks", query, nil, &page); err != nil {
		return TaskPage{}, err
	}
	return page, nil
}

// TaskUpdate holds the caller-supplied fields for a partial task update. Nil
// fields are left untouched; the Reward follows the same three-state rules as
// creation.
type TaskUpdate struct {
	Description *string `json:"task,omitempty"`
	Assignee    *string `json:"assignee,omitempty"`
	Stage       *string `json:"stage,omitempty"`
	Reward      Reward  `json:"reward,omitzero"`
	Notes       *string `json:"notes,omitempty"`
}

// UpdateTask applies a partial update and returns the updated record.
func (c *Client) UpdateTask(ctx context.Context, id string, update TaskUpdate) (*Task, error) {
	var updated Task
	op := fmt.Sprintf("update task %s", id)
	if err := c.do(ctx, op, http.MethodPut, "/tasks/"+url.PathEscape(id), nil, update, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTask deletes a task by id.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	op := fmt.Sprintf("delete task %s", id)
	if err := c.do(ctx, op, http.MethodDelete, "/tasks/"+url.PathEscape(id), nil, nil, nil); err != nil {
		return err
	}
	c.logger.Info().Str("task", id).Msg("task deleted")
	return nil
}
