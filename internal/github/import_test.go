package github

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

func setupBoardClient(t *testing.T, handler http.HandlerFunc) (*board.Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	client, err := board.NewClient(&config.Config{AccessToken: "tok", ServiceURL: server.URL}, zerolog.Nop())
	require.NoError(t, err)
	client.SetHTTPClient(server.Client())
	return client, server
}

func TestImport_PartialFailureKeepsGoing(t *testing.T) {
	calls := 0
	boards, server := setupBoardClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 2 {
			w.WriteHeader(http.StatusPaymentRequired)
			io.WriteString(w, `{"detail": "wallet balance too low"}`)
			return
		}

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "b1", payload["scrum_id"])
		json.NewEncoder(w).Encode(board.Task{ID: "t", ScrumID: "b1", Stage: board.StageTodo})
	})
	defer server.Close()

	importer := NewImporter(boards, "", zerolog.Nop())
	issues := []Issue{
		{Number: 1, Title: "first"},
		{Number: 2, Title: "second"},
		{Number: 3, Title: "third"},
	}

	results := importer.Import(context.Background(), "b1", issues)

	require.Len(t, results, 3)
	assert.True(t, results[0].Success())
	assert.False(t, results[1].Success())
	assert.True(t, results[2].Success())
	assert.Equal(t, 3, calls, "a failed entry must not abort the batch")

	var upstream *board.UpstreamError
	require.ErrorAs(t, results[1].Err, &upstream)
	assert.Equal(t, "wallet balance too low", upstream.Detail)
	assert.Nil(t, results[1].Task)
}

func TestImport_MapsIssueFields(t *testing.T) {
	var payload map[string]any
	boards, server := setupBoardClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		json.NewEncoder(w).Encode(board.Task{ID: "t1"})
	})
	defer server.Close()

	importer := NewImporter(boards, "", zerolog.Nop())
	results := importer.Import(context.Background(), "b1", []Issue{{
		Number:   42,
		Title:    "relay drops connections",
		Assignee: "alice",
		URL:      "https://github.com/acme/relay/issues/42",
	}})

	require.Len(t, results, 1)
	require.True(t, results[0].Success())

	assert.Equal(t, "#42 relay drops connections", payload["task"])
	assert.Equal(t, "alice", payload["assignee"])
	assert.Equal(t, "https://github.com/acme/relay/issues/42", payload["notes"])
	assert.Equal(t, "todo", payload["stage"])
	_, hasReward := payload["reward"]
	assert.False(t, hasReward, "imported issues carry no reward")
}

func TestImport_EmptyBatch(t *testing.T) {
	boards, server := setupBoardClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for an empty batch")
	})
	defer server.Close()

	importer := NewImporter(boards, "", zerolog.Nop())
	results := importer.Import(context.Background(), "b1", nil)
	assert.Empty(t, results)
}
