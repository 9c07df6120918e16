package board

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/satsboard/satsboard/internal/config"
)

// HTTPClient abstracts HTTP calls for testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client wraps the scrum-board HTTP API. The calling context is resolved once
// at construction and stays immutable; every request carries it. No retries,
// no token refresh.
type Client struct {
	baseURL    string
	callCtx    CallingContext
	walletID   string
	httpClient HTTPClient
	limiter    *rate.Limiter
	logger     zerolog.Logger
}

// NewClient resolves the calling context from cfg and returns a ready client.
// It fails fast with ErrNoCredentials when the configuration carries no
// authentication method, before any network call.
func NewClient(cfg *config.Config, logger zerolog.Logger) (*Client, error) {
	cc, err := ResolveContext(cfg)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL(), "/"),
		callCtx:    cc,
		walletID:   cfg.WalletID,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(10), 20),
		logger:     logger.With().Str("component", "board").Logger(),
	}, nil
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(hc HTTPClient) {
	c.httpClient = hc
}

// BaseURL returns the service URL the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CallingContext exposes the resolved context, mostly for diagnostics.
func (c *Client) CallingContext() CallingContext {
	return c.callCtx
}

// HealthCheck verifies the service is reachable with the configured
// credentials by listing a single board.
func (c *Client) HealthCheck(ctx context.Context) error {
	_, err := c.ListBoards(ctx, 1, 0)
	return err
}

// do executes one request against the board API. op names the logical
// operation so a failure reports which action failed.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return upstreamErr(op, err)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return upstreamErr(op, fmt.Errorf("encoding request: %w", err))
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, &buf)
	if err != nil {
		return upstreamErr(op, fmt.Errorf("creating request: %w", err))
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	c.callCtx.apply(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return upstreamErr(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail := readErrorDetail(resp.Body)
		c.logger.Warn().Str("op", op).Int("status", resp.StatusCode).Str("detail", detail).Msg("request failed")
		return &UpstreamError{Op: op, Status: resp.StatusCode, Detail: detail}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return upstreamErr(op, fmt.Errorf("decoding response: %w", err))
		}
	}

	c.logger.Debug().Str("op", op).Int("status", resp.StatusCode).Msg("request ok")
	return nil
}

// readErrorDetail surfaces the service's structured detail message verbatim,
// falling back to the raw body.
func readErrorDetail(r io.Reader) string {
	raw, _ := io.ReadAll(r)
	var parsed struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	return strings.TrimSpace(string(raw))
}
