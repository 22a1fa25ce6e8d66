package nbastats

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
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
	defaultBaseURL = "https://stats.nba.com/stats"

	gameFinderResultSet = "LeagueGameFinderResults"
	playByPlayResultSet = "PlayByPlay"
)

var errStatsTransient = crerr.New("stats provider transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Season         string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client adapts the stats.nba.com tabular API to the GameSource contract.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	season         string
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
		season:         strings.TrimSpace(cfg.Season),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// ListGames queries the game finder for the date window. The finder returns
// one row per team per game; home and away rows are paired by game id via
// the MATCHUP column ("MIA vs. CHI" marks the home side, "CHI @ MIA" the
// away side).
func (c *Client) ListGames(ctx context.Context, start, end time.Time) ([]game.Ref, error) {
	query := map[string]string{
		"LeagueID":   "00",
		"Season":     c.season,
		"SeasonType": "Regular Season",
		"DateFrom":   start.Format("01/02/2006"),
		"DateTo":     end.Format("01/02/2006"),
	}

	var envelope resultSetsEnvelope
	if err := c.doJSON(ctx, "/leaguegamefinder", query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch game list: %w", err)
	}

	set, ok := envelope.resultSet(gameFinderResultSet)
	if !ok {
		return nil, nil
	}

	gameIDIdx := set.columnIndex("GAME_ID")
	dateIdx := set.columnIndex("GAME_DATE")
	teamIDIdx := set.columnIndex("TEAM_ID")
	teamNameIdx := set.columnIndex("TEAM_NAME")
	matchupIdx := set.columnIndex("MATCHUP")

	order := make([]string, 0, len(set.RowSet)/2)
	byID := make(map[string]*game.Ref, len(set.RowSet)/2)
	for _, row := range set.RowSet {
		gameID := cellString(row, gameIDIdx)
		if gameID == "" {
			continue
		}

		ref, seen := byID[gameID]
		if !seen {
			ref = &game.Ref{ID: gameID}
			byID[gameID] = ref
			order = append(order, gameID)
		}
		if ref.Date.IsZero() {
			if parsed, err := time.ParseInLocation("2006-01-02", cellString(row, dateIdx), time.UTC); err == nil {
				ref.Date = parsed
			}
		}

		team := game.NormalizeTeamName(cellString(row, teamNameIdx))
		matchup := cellString(row, matchupIdx)
		switch {
		case strings.Contains(matchup, " vs. "):
			ref.HomeTeam = team
			ref.HomeTeamID = cellString(row, teamIDIdx)
		case strings.Contains(matchup, " @ "):
			ref.AwayTeam = team
		}
	}

	out := make([]game.Ref, 0, len(order))
	for _, gameID := range order {
		ref := byID[gameID]
		if ref.HomeTeam == "" && ref.AwayTeam == "" {
			continue
		}
		out = append(out, *ref)
	}
	return out, nil
}

// FetchPeriod1Events pulls the period-1 play-by-play table. A game with no
// rows yields an empty slice with no error.
func (c *Client) FetchPeriod1Events(ctx context.Context, gameID string) ([]playbyplay.RawEvent, error) {
	query := map[string]string{
		"GameID":      gameID,
		"StartPeriod": "1",
		"EndPeriod":   "1",
	}

	var envelope resultSetsEnvelope
	if err := c.doJSON(ctx, "/playbyplayv2", query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch play-by-play game_id=%s: %w", gameID, err)
	}

	set, ok := envelope.resultSet(playByPlayResultSet)
	if !ok {
		return nil, nil
	}

	periodIdx := set.columnIndex("PERIOD")
	typeIdx := set.columnIndex("EVENTMSGTYPE")
	homeDescIdx := set.columnIndex("HOMEDESCRIPTION")
	visitorDescIdx := set.columnIndex("VISITORDESCRIPTION")
	neutralDescIdx := set.columnIndex("NEUTRALDESCRIPTION")
	playerIdx := set.columnIndex("PLAYER1_NAME")
	playerTeamIdx := set.columnIndex("PLAYER1_TEAM_ID")

	out := make([]playbyplay.RawEvent, 0, len(set.RowSet))
	for _, row := range set.RowSet {
		out = append(out, playbyplay.RawEvent{
			Period:             cellInt(row, periodIdx),
			TypeCode:           cellInt(row, typeIdx),
			HomeDescription:    cellString(row, homeDescIdx),
			VisitorDescription: cellString(row, visitorDescIdx),
			Description:        cellString(row, neutralDescIdx),
			Player:             cellString(row, playerIdx),
			TeamID:             cellString(row, playerTeamIdx),
		})
	}
	return out, nil
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "stats circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: %w: stats provider is temporarily unavailable",
				usecase.ErrTransientFetch, usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
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
		// Malformed payloads are permanent: retrying the same document will
		// not make it parse.
		return fmt.Errorf("decode provider payload: %w", err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	// The stats host rejects requests without a browser-looking identity.
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Referer", "https://www.nba.com/")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: send request: %v", usecase.ErrTransientFetch, errStatsTransient, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 6<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: %w: read response body: %v", usecase.ErrTransientFetch, errStatsTransient, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if isRetryableStatus(resp.StatusCode) {
			return nil, fmt.Errorf("%w: %w: provider status=%d", usecase.ErrTransientFetch, errStatsTransient, resp.StatusCode)
		}
		return nil, fmt.Errorf("provider status=%d", resp.StatusCode)
	}
	return raw, nil
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return true
	}
	return status >= 500
}
