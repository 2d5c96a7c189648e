package statsapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"mlb-streams/internal/domain"
	"mlb-streams/internal/logging"
	"mlb-streams/internal/providers"
	"mlb-streams/internal/snapshots"
)

// Config controls how the statsapi client reaches the MLB schedule API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
	Snapshots  *snapshots.Writer
}

// Client fetches a day's schedule from the MLB statsapi and maps each live
// game to a selectable domain.Game.
type Client struct {
	baseURL    string
	httpClient httpDoer
	logger     *slog.Logger
	snapshots  *snapshots.Writer
}

// NewClient constructs a statsapi client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		logger:     cfg.Logger,
		snapshots:  cfg.Snapshots,
	}
}

// FetchGames retrieves the schedule for the given YYYY-MM-DD date and returns
// the live games in response order. Finished and not-yet-started games are
// skipped. Missing team names or abbreviations fail the whole fetch; missing
// scores and linescores fall back to defaults.
func (c *Client) FetchGames(ctx context.Context, date string) ([]domain.Game, error) {
	req, err := c.buildRequest(ctx, date)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: schedule request: %w", providerName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read schedule response: %w", providerName, err)
	}

	if werr := c.snapshots.WriteResponse(snapshotKind, date, body); werr != nil {
		logging.Warn(c.logger, "schedule snapshot write failed",
			logging.FieldProvider, providerName, "error", werr)
	}

	games, err := decodeSchedule(body)
	if err != nil {
		return nil, err
	}

	logging.Info(c.logger, "schedule fetched",
		logging.FieldProvider, providerName,
		logging.FieldDate, date,
		logging.FieldCount, len(games))

	return games, nil
}

func (c *Client) buildRequest(ctx context.Context, date string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/schedule", nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("sportId", sportID)
	q.Set("hydrate", hydrateParam)
	q.Set("date", date)
	req.URL.RawQuery = q.Encode()

	return req, nil
}
