// Package scoutapi is a thin client for the scouting backend. Every call is
// independent: there is no retry, no caching and no coalescing of identical
// requests.
package scoutapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/scout9/scout9-web/internal/models"
)

// DefaultTimeout bounds a call when neither the client nor the call sets one.
// Report generation can take minutes on the backend.
const DefaultTimeout = 5 * time.Minute

// maxErrorBody limits how much of a failed response is read for its message
const maxErrorBody = 64 << 10

// Prometheus metrics
var (
	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scout9_upstream_requests_total",
		Help: "Scouting backend calls by endpoint and outcome",
	}, []string{"endpoint", "outcome"})

	upstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "scout9_upstream_request_duration_seconds",
		Help:    "Latency of scouting backend calls",
		Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	}, []string{"endpoint"})
)

type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *zap.Logger
}

type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *zap.SugaredLogger
}

func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.HTTPClient == nil {
		// The per-call context owns the deadline
		cfg.HTTPClient = &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        50,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		timeout:    cfg.Timeout,
		httpClient: cfg.HTTPClient,
		logger:     cfg.Logger.Sugar(),
	}
}

// BaseURL returns the configured backend root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type timeoutKey struct{}

// WithTimeout overrides the client timeout for calls made with ctx.
func WithTimeout(ctx context.Context, d time.Duration) context.Context {
	return context.WithValue(ctx, timeoutKey{}, d)
}

func (c *Client) timeoutFor(ctx context.Context) time.Duration {
	if d, ok := ctx.Value(timeoutKey{}).(time.Duration); ok && d > 0 {
		return d
	}
	return c.timeout
}

// ============================================================================
// Operations
// ============================================================================

func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var out HealthStatus
	if err := c.getJSON(ctx, "health", "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Titles(ctx context.Context) ([]TitleInfo, error) {
	var out []TitleInfo
	if err := c.getJSON(ctx, "titles", "/api/titles", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Tournaments(ctx context.Context, title models.Title) ([]Tournament, error) {
	var out []Tournament
	q := url.Values{"title": {string(title)}}
	if err := c.getJSON(ctx, "tournaments", "/api/tournaments", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) TeamsByTournament(ctx context.Context, tournamentID string) ([]models.Team, error) {
	var out []models.Team
	q := url.Values{"tournament": {tournamentID}}
	if err := c.getJSON(ctx, "teams", "/api/teams", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchTeams queries the backend. The local roster answers the same
// question without a round trip and is preferred by the portal.
func (c *Client) SearchTeams(ctx context.Context, query string, title models.Title) ([]models.Team, error) {
	var out []models.Team
	q := url.Values{"q": {query}, "title": {string(title)}}
	if err := c.getJSON(ctx, "teams_search", "/api/teams/search", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Team(ctx context.Context, id string) (*models.Team, error) {
	var out models.Team
	if err := c.getJSON(ctx, "team", "/api/teams/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TeamSeries returns recent series of a team. A limit of 0 uses the default.
func (c *Client) TeamSeries(ctx context.Context, id string, limit int) (json.RawMessage, error) {
	if limit <= 0 {
		limit = DefaultSeriesLimit
	}
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	return c.do(ctx, "team_series", http.MethodGet, "/api/teams/"+url.PathEscape(id)+"/series", q, nil)
}

// GenerateReport asks the backend to build a report and returns the raw
// payload for the normalizer.
func (c *Client) GenerateReport(ctx context.Context, req GenerateRequest) ([]byte, error) {
	return c.do(ctx, "reports_generate", http.MethodPost, "/api/reports/generate", nil, req.withDefaults())
}

func (c *Client) Report(ctx context.Context, id string) ([]byte, error) {
	return c.do(ctx, "report", http.MethodGet, "/api/reports/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ListReports(ctx context.Context) ([]models.ReportListItem, error) {
	var raw []struct {
		ID              models.FlexString `json:"id"`
		TeamName        string            `json:"teamName"`
		Title           string            `json:"title"`
		GeneratedAt     string            `json:"generatedAt"`
		MatchesAnalyzed models.FlexFloat  `json:"matchesAnalyzed"`
	}
	if err := c.getJSON(ctx, "reports", "/api/reports", nil, &raw); err != nil {
		return nil, err
	}
	out := make([]models.ReportListItem, 0, len(raw))
	for _, r := range raw {
		title, _ := models.ParseTitle(r.Title)
		out = append(out, models.ReportListItem{
			ID:              r.ID.String(),
			TeamName:        r.TeamName,
			Title:           title,
			GeneratedAt:     r.GeneratedAt,
			MatchesAnalyzed: r.MatchesAnalyzed.Int(),
		})
	}
	return out, nil
}

func (c *Client) Matchup(ctx context.Context, req MatchupRequest) ([]byte, error) {
	matches := req.Matches
	if matches <= 0 {
		matches = DefaultMatchupGames
	}
	q := url.Values{
		"team1":   {req.Team1},
		"team2":   {req.Team2},
		"title":   {string(req.Title)},
		"matches": {strconv.Itoa(matches)},
	}
	return c.do(ctx, "matchup", http.MethodGet, "/api/matchup", q, nil)
}

// Series returns the backend's series state untouched.
func (c *Client) Series(ctx context.Context, id string) (json.RawMessage, error) {
	return c.do(ctx, "series", http.MethodGet, "/api/series/"+url.PathEscape(id), nil, nil)
}

// ============================================================================
// Transport
// ============================================================================

func (c *Client) getJSON(ctx context.Context, endpoint, path string, query url.Values, out any) error {
	body, err := c.do(ctx, endpoint, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return newAPIError(endpoint, http.StatusBadGateway, "Invalid response from server").WithCause(err)
	}
	return nil
}

// do issues one call under its own deadline and returns the response body.
func (c *Client) do(ctx context.Context, endpoint, method, path string, query url.Values, reqBody any) ([]byte, error) {
	start := time.Now()
	body, err := c.roundTrip(ctx, endpoint, method, path, query, reqBody)
	upstreamDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	upstreamRequests.WithLabelValues(endpoint, outcomeLabel(err)).Inc()
	if err != nil {
		c.logger.Warnw("scout api call failed", "endpoint", endpoint, "status", StatusOf(err), "error", err)
	}
	return body, err
}

func (c *Client) roundTrip(ctx context.Context, endpoint, method, path string, query url.Values, reqBody any) ([]byte, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if reqBody != nil {
		payload, err := json.Marshal(reqBody)
		if err != nil {
			return nil, newAPIError(endpoint, 0, "failed to encode request").WithCause(err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeoutFor(ctx))
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, newAPIError(endpoint, 0, "failed to create request").WithCause(err)
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.transportError(ctx, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, newAPIError(endpoint, resp.StatusCode, errorMessage(raw))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.transportError(ctx, endpoint, err)
	}
	return body, nil
}

// transportError separates our own deadline from caller cancellation and
// network failures.
func (c *Client) transportError(ctx context.Context, endpoint string, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return newTimeoutError(endpoint, err)
	}
	if errors.Is(err, context.Canceled) {
		return context.Canceled
	}
	return newAPIError(endpoint, 0, err.Error()).WithCause(err)
}

// errorMessage extracts the backend's message from a JSON error body,
// preferring "error" over "message".
func errorMessage(body []byte) string {
	var payload struct {
		Error   any `json:"error"`
		Message any `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return MessageUnknown
	}
	if s, ok := payload.Error.(string); ok && s != "" {
		return s
	}
	if s, ok := payload.Message.(string); ok && s != "" {
		return s
	}
	return MessageRequestFailed
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case IsTransport(err):
		return "transport"
	}
	return "error"
}
