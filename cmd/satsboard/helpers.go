package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/satsboard/satsboard/internal/board"
)

// parseCommaList splits a comma-separated string and trims whitespace
func parseCommaList(input string) []string {
	if input == "" {
		return []string{}
	}

	parts := strings.Split(input, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// parseReward maps the --reward flag onto the three reward states: empty
// means unspecified, "null" is an explicit null, anything else must be a
// satoshi amount (0 = free task).
func parseReward(input string) (board.Reward, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return board.Reward{}, nil
	}
	if strings.EqualFold(input, "null") {
		return board.RewardNull(), nil
	}
	n, err := strconv.ParseInt(input, 10, 64)
	if err != nil || n < 0 {
		return board.Reward{}, fmt.Errorf("invalid reward %q: expected a non-negative sats amount or 'null'", input)
	}
	return board.RewardSats(n), nil
}

// splitRepo splits "owner/name" into its two parts.
func splitRepo(input string) (owner, name string, err error) {
	parts := strings.SplitN(input, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository %q: expected owner/name", input)
	}
	return parts[0], parts[1], nil
}

func newSpinner(description string) *progressbar.ProgressBar {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWidth(15),
		progressbar.OptionThrottle(100*time.Millisecond),
	)
	_ = bar.RenderBlank()
	return bar
}

func finishBar(bar *progressbar.ProgressBar) {
	if bar != nil {
		_ = bar.Finish()
	}
}
