package providers

import (
	"context"

	"mlb-streams/internal/domain"
)

// ScheduleProvider defines how upstream schedule data is fetched and
// normalized. The date parameter is a YYYY-MM-DD string indicating which
// day's games to fetch.
type ScheduleProvider interface {
	FetchGames(ctx context.Context, date string) ([]domain.Game, error)
}

// SourceProvider resolves the streaming sources for a game by its match key.
// A key with no match yields an empty slice, not an error.
type SourceProvider interface {
	FetchSources(ctx context.Context, matchKey string) ([]domain.Source, error)
}

// StreamProvider resolves the concrete streams behind one source descriptor.
type StreamProvider interface {
	FetchStreams(ctx context.Context, source domain.Source) ([]domain.Stream, error)
}
