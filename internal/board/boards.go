package board

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// CreateBoardRequest holds the caller-supplied fields for a new board. The
// wallet reference is threaded in from configuration by the client; it plays
// no role in authentication.
type CreateBoardRequest struct {
	Name              string `json:"name"`
	Description       string `json:"description"`
	PublicAssigning   bool   `json:"public_assigning"`
	PublicTasks       bool   `json:"public_tasks"`
	PublicDeleteTasks bool   `json:"public_delete_tasks"`
	Wallet            string `json:"wallet,omitempty"`
}

// CreateBoard creates a board and returns the record the service minted.
func (c *Client) CreateBoard(ctx context.Context, req CreateBoardRequest) (*ScrumBoard, error) {
	if req.Wallet == "" {
		req.Wallet = c.walletID
	}

	var created ScrumBoard
	if err := c.do(ctx, "create board", http.MethodPost, "/boards", nil, req, &created); err != nil {
		return nil, err
	}

	c.logger.Info().Str("board", created.ID).Str("name", created.Name).Msg("board created")
	return &created, nil
}

// GetBoard fetches a board by id.
func (c *Client) GetBoard(ctx context.Context, id string) (*ScrumBoard, error) {
	var b ScrumBoard
	op := fmt.Sprintf("get board %s", id)
	if err := c.do(ctx, op, http.MethodGet, "/boards/"+url.PathEscape(id), nil, nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// ListBoards returns a page of boards. Zero limit and offset are omitted from
// the query.
func (c *Client) ListBoards(ctx context.Context, limit, offset int) ([]ScrumBoard, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		query.Set("offset", strconv.Itoa(offset))
	}

	var boards []ScrumBoard
	if err := c.do(ctx, "list boards", http.MethodGet, "/boards", query, nil, &boards); err != nil {
		return nil, err
	}
	return boards, nil
}

// BoardUpdate holds the caller-supplied fields for a partial board update.
// Nil fields are left untouched by the service.
type BoardUpdate struct {
	Name              *string `json:"name,omitempty"`
	Description       *string `json:"description,omitempty"`
	PublicAssigning   *bool   `json:"public_assigning,omitempty"`
	PublicTasks       *bool   `json:"public_tasks,omitempty"`
	PublicDeleteTasks *bool   `json:"public_delete_tasks,omitempty"`
}

// UpdateBoard applies a partial update and returns the updated record.
func (c *Client) UpdateBoard(ctx context.Context, id string, update BoardUpdate) (*ScrumBoard, error) {
	var updated ScrumBoard
	op := fmt.Sprintf("update board %s", id)
	if err := c.do(ctx, op, http.MethodPut, "/boards/"+url.PathEscape(id), nil, update, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteBoard deletes a board by id.
func (c *Client) DeleteBoard(ctx context.Context, id string) error {
	op := fmt.Sprintf("delete board %s", id)
	if err := c.do(ctx, op, http.MethodDelete, "/boards/"+url.PathEscape(id), nil, nil, nil); err != nil {
		return err
	}
	c.logger.Info().Str("board", id).Msg("board deleted")
	return nil
}
