package streamed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"mlb-streams/internal/domain"
	"mlb-streams/internal/logging"
	"mlb-streams/internal/providers"
	"mlb-streams/internal/snapshots"
)

// Config controls how the streamed client reaches the streaming-sources API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
	Snapshots  *snapshots.Writer
}

// Client resolves streaming sources and streams for a match key.
type Client struct {
	baseURL    string
	httpClient httpDoer
	logger     *slog.Logger
	snapshots  *snapshots.Writer
}

// NewClient constructs a streamed client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		logger:     cfg.Logger,
		snapshots:  cfg.Snapshots,
	}
}

// FetchSources retrieves the current baseball matches and returns the
// sources of the first match whose title equals matchKey byte-for-byte.
// A missing match is not an error; it resolves to an empty slice.
func (c *Client) FetchSources(ctx context.Context, matchKey string) ([]domain.Source, error) {
	logging.Info(c.logger, "looking up sources",
		logging.FieldProvider, providerName,
		logging.FieldMatchKey, matchKey)

	body, err := c.get(ctx, fmt.Sprintf("%s/matches/%s", c.baseURL, matchCategory))
	if err != nil {
		return nil, err
	}

	if werr := c.snapshots.WriteResponse(snapshotKindMatches, matchCategory, body); werr != nil {
		logging.Warn(c.logger, "matches snapshot write failed",
			logging.FieldProvider, providerName, "error", werr)
	}

	var matches []matchResponse
	if err := json.Unmarshal(body, &matches); err != nil {
		return nil, fmt.Errorf("%s: decode matches response: %w", providerName, err)
	}

	for _, m := range matches {
		if m.Title != matchKey {
			continue
		}
		sources := make([]domain.Source, 0, len(m.Sources))
		for _, s := range m.Sources {
			sources = append(sources, domain.Source{ID: s.ID, Type: s.Source})
		}
		return sources, nil
	}

	logging.Info(c.logger, "no match found for key",
		logging.FieldProvider, providerName,
		logging.FieldMatchKey, matchKey)
	return []domain.Source{}, nil
}

// FetchStreams retrieves the concrete streams for one source descriptor, in
// response order.
func (c *Client) FetchStreams(ctx context.Context, source domain.Source) ([]domain.Stream, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/stream/%s/%s", c.baseURL, url.PathEscape(source.Type), url.PathEscape(source.ID)))
	if err != nil {
		return nil, err
	}

	if werr := c.snapshots.WriteResponse(snapshotKindStreams, source.Type+"-"+source.ID, body); werr != nil {
		logging.Warn(c.logger, "streams snapshot write failed",
			logging.FieldProvider, providerName, "error", werr)
	}

	var payload []streamResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%s: decode stream response: %w", providerName, err)
	}

	streams := make([]domain.Stream, 0, len(payload))
	for _, s := range payload {
		streams = append(streams, domain.Stream{EmbedURL: s.EmbedURL})
	}
	return streams, nil
}

func (c *Client) get(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: request: %w", providerName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(snippet)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read response: %w", providerName, err)
	}
	return body, nil
}
