package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"mlb-streams/internal/domain"
	"mlb-streams/internal/logging"
	"mlb-streams/internal/metrics"
	"mlb-streams/internal/providers"
	"mlb-streams/internal/timeutil"
)

const (
	providerSchedule = "statsapi"
	providerStreams  = "streamed"
)

// Config wires the selection flow together.
type Config struct {
	Schedule providers.ScheduleProvider
	Sources  providers.SourceProvider
	Streams  providers.StreamProvider
	Logger   *slog.Logger
	Recorder *metrics.Recorder
	Input    io.Reader
	Output   io.Writer

	// Date optionally pins the schedule date (YYYY-MM-DD). Empty means
	// today in Timezone.
	Date     string
	Timezone string
}

// App runs the interactive pick-a-game flow: fetch schedule, read one
// selection, resolve sources, print embed URLs.
type App struct {
	schedule providers.ScheduleProvider
	sources  providers.SourceProvider
	streams  providers.StreamProvider
	logger   *slog.Logger
	recorder *metrics.Recorder
	in       io.Reader
	out      io.Writer
	now      func() time.Time
	loc      *time.Location
	date     string
}

// New constructs the App from its configuration.
func New(cfg Config) *App {
	return &App{
		schedule: cfg.Schedule,
		sources:  cfg.Sources,
		streams:  cfg.Streams,
		logger:   cfg.Logger,
		recorder: cfg.Recorder,
		in:       cfg.Input,
		out:      cfg.Output,
		now:      time.Now,
		loc:      resolveLocation(cfg.Timezone),
		date:     cfg.Date,
	}
}

// Run drives the flow to completion. An invalid selection prints a message
// and returns nil; provider failures propagate as errors.
func (a *App) Run(ctx context.Context) error {
	games, err := a.fetchSchedule(ctx)
	if err != nil {
		return err
	}

	a.printGames(games)

	index, ok := a.readSelection(games)
	if !ok {
		fmt.Fprintln(a.out, "Invalid selection")
		return nil
	}
	selected := games[index]

	fmt.Fprintf(a.out, "\nSelected game: %s\n\n", selected.Title)

	sources, err := a.fetchSources(ctx, selected.MatchKey)
	if err != nil {
		return err
	}

	return a.printStreams(ctx, sources)
}

func (a *App) fetchSchedule(ctx context.Context) ([]domain.Game, error) {
	date := a.date
	if date == "" {
		date = timeutil.FormatDate(a.now().In(a.loc))
	}

	start := a.now()
	games, err := a.schedule.FetchGames(ctx, date)
	a.recorder.RecordProviderAttempt(providerSchedule, a.now().Sub(start), err)
	if err != nil {
		return nil, err
	}
	return games, nil
}

func (a *App) printGames(games []domain.Game) {
	fmt.Fprintln(a.out, "\nAvailable games:")
	for i, game := range games {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, game.Title)
	}
}

func (a *App) readSelection(games []domain.Game) (int, bool) {
	fmt.Fprintln(a.out, "\nSelect a game number:")

	scanner := bufio.NewScanner(a.in)
	if !scanner.Scan() {
		return 0, false
	}

	index, err := ParseSelection(scanner.Text(), len(games))
	if err != nil {
		logging.Warn(a.logger, "selection rejected", "error", err)
		return 0, false
	}
	return index, true
}

func (a *App) fetchSources(ctx context.Context, matchKey string) ([]domain.Source, error) {
	fmt.Fprintf(a.out, "Getting sources for %s...\n", matchKey)

	start := a.now()
	sources, err := a.sources.FetchSources(ctx, matchKey)
	a.recorder.RecordProviderAttempt(providerStreams, a.now().Sub(start), err)
	if err != nil {
		return nil, err
	}
	return sources, nil
}

func (a *App) printStreams(ctx context.Context, sources []domain.Source) error {
	fmt.Fprintln(a.out, "\nStreams:")
	fmt.Fprintln(a.out)

	for _, source := range sources {
		start := a.now()
		streams, err := a.streams.FetchStreams(ctx, source)
		a.recorder.RecordProviderAttempt(providerStreams, a.now().Sub(start), err)
		if err != nil {
			return err
		}
		for _, stream := range streams {
			fmt.Fprintln(a.out, stream.EmbedURL)
		}
		a.recorder.RecordStreamsResolved(source.Type, len(streams))
	}
	return nil
}

func resolveLocation(name string) *time.Location {
	if name == "" {
		return time.Local
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.UTC
}
