package balldontlie

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/barnanst-collab/nba-game-openers-tracker/internal/domain/game"
	"github.com/barnanst-collab/nba-game-openers-tracker/internal/domain/playbyplay"
	"github.com/barnanst-collab/nba-game-openers-tracker/internal/platform/logging"
	"github.com/barnanst-collab/nba-game-openers-tracker/internal/platform/resilience"
	"github.com/barnanst-collab/nba-game-openers-tracker/internal/usecase"
)

const (
	defaultBaseURL  = "https://api.balldontlie.io/v1"
	defaultPageSize = 100
	maxPages        = 25
)

var errProviderTransient = crerr.New("balldontlie transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client adapts the balldontlie REST API to the GameSource contract. It
// differs from the stats adapter in every provider-specific way: bearer-style
// auth header, cursor pagination, and per-event JSON objects with explicit
// player/made/team fields.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		token:          strings.TrimSpace(cfg.Token),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) ListGames(ctx context.Context, start, end time.Time) ([]game.Ref, error) {
	query := url.Values{}
	query.Set("start_date", start.Format("2006-01-02"))
	query.Set("end_date", end.Format("2006-01-02"))
	query.Set("per_page", strconv.Itoa(defaultPageSize))

	out := make([]game.Ref, 0, defaultPageSize)
	var cursor *int64
	for page := 0; page < maxPages; page++ {
		if cursor != nil {
			query.Set("cursor", strconv.FormatInt(*cursor, 10))
		}

		var envelope gamesEnvelope
		if err := c.doJSON(ctx, "/games", query, &envelope); err != nil {
			return nil, fmt.Errorf("fetch game list: %w", err)
		}

		for _, item := range envelope.Data {
			ref, ok := mapGame(item)
			if !ok {
				continue
			}
			out = append(out, ref)
		}

		cursor = envelope.Meta.NextCursor
		if cursor == nil {
			break
		}
	}
	return out, nil
}

func (c *Client) FetchPeriod1Events(ctx context.Context, gameID string) ([]playbyplay.RawEvent, error) {
	query := url.Values{}
	query.Set("game_ids[]", gameID)
	query.Set("periods[]", "1")
	query.Set("per_page", strconv.Itoa(defaultPageSize))

	out := make([]playbyplay.RawEvent, 0, defaultPageSize)
	var cursor *int64
	for page := 0; page < maxPages; page++ {
		if cursor != nil {
			query.Set("cursor", strconv.FormatInt(*cursor, 10))
		}

		var envelope playsEnvelope
		if err := c.doJSON(ctx, "/plays", query, &envelope); err != nil {
			return nil, fmt.Errorf("fetch plays game_id=%s: %w", gameID, err)
		}

		for _, item := range envelope.Data {
			out = append(out, mapPlay(item))
		}

		cursor = envelope.Meta.NextCursor
		if cursor == nil {
			break
		}
	}
	return out, nil
}

func mapGame(item gameItem) (game.Ref, bool) {
	if item.ID <= 0 {
		return game.Ref{}, false
	}

	ref := game.Ref{
		ID:         strconv.FormatInt(item.ID, 10),
		HomeTeam:   game.NormalizeTeamName(item.HomeTeam.FullName),
		AwayTeam:   game.NormalizeTeamName(item.VisitorTeam.FullName),
		HomeTeamID: strconv.FormatInt(item.HomeTeam.ID, 10),
	}
	if parsed, err := time.ParseInLocation("2006-01-02", item.Date, time.UTC); err == nil {
		ref.Date = parsed
	}
	return ref, true
}

func mapPlay(item playItem) playbyplay.RawEvent {
	raw := playbyplay.RawEvent{
		Period:      item.Period,
		TypeText:    item.Type,
		Description: item.Description,
		Made:        item.Made,
	}
	if item.TeamID > 0 {
		raw.TeamID = strconv.FormatInt(item.TeamID, 10)
	}
	if item.Player != nil {
		raw.Player = strings.TrimSpace(item.Player.LastName)
		if raw.Player == "" {
			raw.Player = strings.TrimSpace(item.Player.FirstName)
		}
	}
	return raw
}

func (c *Client) doJSON(ctx context.Context, path string, query url.Values, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "balldontlie circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: %w: provider is temporarily unavailable",
				usecase.ErrTransientFetch, usecase.ErrDependencyUnavailable)
		}
	}

	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	raw, err := c.executeRequest(ctx, fullURL)
	if c.circuitEnabled {
		if err != nil {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}
	if err != nil {
		return err
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: send request: %s",
			usecase.ErrTransientFetch, errProviderTransient, c.redact(err.Error()))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 6<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: %w: read response body: %v",
			usecase.ErrTransientFetch, errProviderTransient, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if isRetryableStatus(resp.StatusCode) {
			return nil, fmt.Errorf("%w: %w: provider status=%d",
				usecase.ErrTransientFetch, errProviderTransient, resp.StatusCode)
		}
		return nil, fmt.Errorf("provider status=%d", resp.StatusCode)
	}
	return raw, nil
}

// redact keeps the API token out of logged transport errors.
func (c *Client) redact(value string) string {
	if c.token == "" {
		return value
	}
	return strings.ReplaceAll(value, c.token, "REDACTED")
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return true
	}
	return status >= 500
}
