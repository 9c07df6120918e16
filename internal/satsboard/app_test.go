package satsboard

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satsboard/satsboard/internal/board"
	"github.com/satsboard/satsboard/internal/config"
)

func TestNew_NoCredentials(t *testing.T) {
	_, err := New(&config.Config{}, zerolog.Nop())
	require.ErrorIs(t, err, board.ErrNoCredentials)
}

func TestApplication_SprintReport(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/boards/b1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(board.ScrumBoard{ID: "b1", Name: "Sprint 12"})
	})
	mux.HandleFunc("/tasks", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "b1", r.URL.Query().Get("scrum_id"))
		io.WriteString(w, `{"tasks": [
			{"id": "t1", "stage": "todo"},
			{"id": "t2", "stage": "done", "reward": 5000, "assignee": "alice"},
			{"id": "t3", "stage": "doing", "reward": 0}
		], "total": 3}`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	app, err := New(&config.Config{AccessToken: "tok", ServiceURL: server.URL}, zerolog.Nop())
	require.NoError(t, err)
	app.Client.SetHTTPClient(server.Client())

	rep, err := app.SprintReport(context.Background(), "b1")
	require.NoError(t, err)

	assert.Equal(t, "Sprint 12", rep.Board.Name)
	assert.Equal(t, 3, rep.TotalTasks)
	assert.Len(t, rep.Todo, 1)
	assert.Len(t, rep.Doing, 1)
	assert.Len(t, rep.Done, 1)
	assert.Equal(t, []string{"alice"}, rep.Assignees)
	assert.Equal(t, int64(5000), rep.Rewards.Total)
	assert.Equal(t, int64(5000), rep.Rewards.Completed)
	assert.Equal(t, int64(0), rep.Rewards.Pending)
}

func TestApplication_SprintReportBoardError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"detail": "scrum board not found"}`)
	}))
	defer server.Close()

	app, err := New(&config.Config{AccessToken: "tok", ServiceURL: server.URL}, zerolog.Nop())
	require.NoError(t, err)
	app.Client.SetHTTPClient(server.Client())

	_, err = app.SprintReport(context.Background(), "missing")
	var upstream *board.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "scrum board not found", upstream.Detail)
}
