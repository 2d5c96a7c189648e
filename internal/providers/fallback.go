package providers

import (
	"context"
	"log/slog"

	"mlb-streams/internal/domain"
	"mlb-streams/internal/logging"
	"mlb-streams/internal/timeutil"
)

// dateFallbackProvider wraps a ScheduleProvider so that an empty result for
// the requested date is retried exactly once with the previous calendar day.
// Slates that end after midnight make "today" empty early in the morning;
// yesterday's slate is usually the one still in progress.
type dateFallbackProvider struct {
	inner  ScheduleProvider
	logger *slog.Logger
}

// NewDateFallbackProvider wraps the given provider with the previous-day
// fallback. Errors are never retried, only empty results.
func NewDateFallbackProvider(inner ScheduleProvider, logger *slog.Logger) ScheduleProvider {
	return &dateFallbackProvider{
		inner:  inner,
		logger: logger,
	}
}

func (p *dateFallbackProvider) FetchGames(ctx context.Context, date string) ([]domain.Game, error) {
	games, err := p.inner.FetchGames(ctx, date)
	if err != nil {
		return nil, err
	}
	if len(games) > 0 {
		return games, nil
	}

	previous := timeutil.PreviousDay(date)
	if previous == date {
		return games, nil
	}

	logger := logging.FromContext(ctx, p.logger)
	logging.Info(logger, "no games for date, retrying previous day",
		logging.FieldDate, date, "fallback_date", previous)

	return p.inner.FetchGames(ctx, previous)
}
