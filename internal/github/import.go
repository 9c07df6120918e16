// Package github imports GitHub issues onto a scrum board as todo tasks.
package github

import (
	"context"
	"fmt"

	"github.com/google/go-github/v60/github"
	"github.com/rs/zerolog"

	"github.com/satsboard/satsboard/internal/board"
)

// Issue is the slice of a GitHub issue the importer cares about.
type Issue struct {
	Number   int
	Title    string
	Assignee string
	URL      string
}

// ImportResult records the outcome for one issue. Items are independent: a
// failed entry never aborts the batch.
type ImportResult struct {
	Issue Issue
	Task  *board.Task
	Err   error
}

// Success reports whether the entry was imported.
func (r ImportResult) Success() bool { return r.Err == nil }

// Importer turns GitHub issues into board tasks, one creation call per issue.
type Importer struct {
	boards *board.Client
	gh     *github.Client
	logger zerolog.Logger
}

// NewImporter creates an importer. token may be empty for public
// repositories.
func NewImporter(boards *board.Client, token string, logger zerolog.Logger) *Importer {
	gh := github.NewClient(nil)
	if token != "" {
		gh = gh.WithAuthToken(token)
	}
	return &Importer{
		boards: boards,
		gh:     gh,
		logger: logger.With().Str("component", "github").Logger(),
	}
}

// FetchOpenIssues lists the open issues of owner/repo, skipping pull
// requests.
func (im *Importer) FetchOpenIssues(ctx context.Context, owner, repo string) ([]Issue, error) {
	opts := &github.IssueListByRepoOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var issues []Issue
	for {
		page, resp, err := im.gh.Issues.ListByRepo(ctx, owner, repo, opts)
		if err != nil {
			return nil, fmt.Errorf("listing issues for %s/%s: %w", owner, repo, err)
		}
		for _, iss := range page {
			if iss.IsPullRequest() {
				continue
			}
			issues = append(issues, Issue{
				Number:   iss.GetNumber(),
				Title:    iss.GetTitle(),
				Assignee: iss.GetAssignee().GetLogin(),
				URL:      iss.GetHTMLURL(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	im.logger.Info().Str("repo", owner+"/"+repo).Int("count", len(issues)).Msg("issues fetched")
	return issues, nil
}

// Import creates one task per issue on the given board, collecting a result
// per entry. Failures are captured alongside successes; the batch always runs
// to the end.
func (im *Importer) Import(ctx context.Context, boardID string, issues []Issue) []ImportResult {
	results := make([]ImportResult, 0, len(issues))

	for _, iss := range issues {
		task, err := im.boards.CreateTask(ctx, board.CreateTaskRequest{
			ScrumID:     boardID,
			Description: fmt.Sprintf("#%d %s", iss.Number, iss.Title),
			Assignee:    iss.Assignee,
			Notes:       iss.URL,
		})
		if err != nil {
			im.logger.Warn().Int("issue", iss.Number).Err(err).Msg("issue not imported")
		}
		results = append(results, ImportResult{Issue: iss, Task: task, Err: err})
	}

	return results
}
