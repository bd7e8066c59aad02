package nhl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/preston-bernstein/bruins-live-service/internal/providers"
)

// Config controls how the NHL client reaches the upstream API.
type Config struct {
	BaseURL    string
	TeamAbbrev string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client fetches club schedules and game landing pages from api-web.nhle.com.
type Client struct {
	baseURL    string
	team       string
	httpClient httpDoer
	now        func() time.Time
}

var _ providers.ScheduleProvider = (*Client)(nil)

// NewClient constructs an NHL client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		team:       normalizeTeam(cfg.TeamAbbrev),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
	}
}

// GetSchedule retrieves the tracked team's schedule for seasonID (e.g. "20252026").
func (c *Client) GetSchedule(ctx context.Context, seasonID string) (providers.ScheduleResponse, error) {
	var payload providers.ScheduleResponse
	path := fmt.Sprintf("/club-schedule-season/%s/%s", url.PathEscape(c.team), url.PathEscape(seasonID))
	if err := c.getJSON(ctx, "schedule", path, &payload); err != nil {
		return providers.ScheduleResponse{}, err
	}
	return payload, nil
}

// GetGameLanding retrieves the gamecenter landing payload for gameID.
func (c *Client) GetGameLanding(ctx context.Context, gameID string) (providers.LandingResponse, error) {
	var payload providers.LandingResponse
	path := fmt.Sprintf("/gamecenter/%s/landing", url.PathEscape(gameID))
	if err := c.getJSON(ctx, "landing", path, &payload); err != nil {
		return providers.LandingResponse{}, err
	}
	return payload, nil
}

func (c *Client) getJSON(ctx context.Context, op, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &providers.UpstreamError{Provider: providerName, Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &providers.UpstreamError{Provider: providerName, Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &providers.UpstreamError{
			Provider:   providerName,
			Op:         op,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &providers.UpstreamError{Provider: providerName, Op: op, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}
