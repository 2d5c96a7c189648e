package providers

import (
	"context"
	"errors"
	"testing"

	"mlb-streams/internal/domain"
)

type stubScheduleProvider struct {
	results map[string][]domain.Game
	err     error
	calls   []string
}

func (s *stubScheduleProvider) FetchGames(ctx context.Context, date string) ([]domain.Game, error) {
	s.calls = append(s.calls, date)
	if s.err != nil {
		return nil, s.err
	}
	return s.results[date], nil
}

func TestFallbackSkippedWhenGamesPresent(t *testing.T) {
	stub := &stubScheduleProvider{results: map[string][]domain.Game{
		"2024-06-02": {{Title: "a"}},
	}}
	provider := NewDateFallbackProvider(stub, nil)

	games, err := provider.FetchGames(context.Background(), "2024-06-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(games))
	}
	if len(stub.calls) != 1 || stub.calls[0] != "2024-06-02" {
		t.Fatalf("expected single call for requested date, got %v", stub.calls)
	}
}

func TestFallbackRetriesPreviousDayOnce(t *testing.T) {
	stub := &stubScheduleProvider{results: map[string][]domain.Game{
		"2024-06-01": {{Title: "yesterday"}},
	}}
	provider := NewDateFallbackProvider(stub, nil)

	games, err := provider.FetchGames(context.Background(), "2024-06-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(games) != 1 || games[0].Title != "yesterday" {
		t.Fatalf("expected yesterday's game, got %+v", games)
	}
	want := []string{"2024-06-02", "2024-06-01"}
	if len(stub.calls) != 2 || stub.calls[0] != want[0] || stub.calls[1] != want[1] {
		t.Fatalf("expected calls %v, got %v", want, stub.calls)
	}
}

func TestFallbackStopsAfterSecondEmptyResult(t *testing.T) {
	stub := &stubScheduleProvider{results: map[string][]domain.Game{}}
	provider := NewDateFallbackProvider(stub, nil)

	games, err := provider.FetchGames(context.Background(), "2024-06-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(games) != 0 {
		t.Fatalf("expected no games, got %d", len(games))
	}
	if len(stub.calls) != 2 {
		t.Fatalf("expected exactly 2 calls, got %v", stub.calls)
	}
}

func TestFallbackDoesNotRetryErrors(t *testing.T) {
	stub := &stubScheduleProvider{err: errors.New("boom")}
	provider := NewDateFallbackProvider(stub, nil)

	if _, err := provider.FetchGames(context.Background(), "2024-06-02"); err == nil {
		t.Fatal("expected error to propagate")
	}
	if len(stub.calls) != 1 {
		t.Fatalf("expected single call, got %v", stub.calls)
	}
}

func TestFallbackSkipsUnparseableDates(t *testing.T) {
	stub := &stubScheduleProvider{results: map[string][]domain.Game{}}
	provider := NewDateFallbackProvider(stub, nil)

	if _, err := provider.FetchGames(context.Background(), "garbage"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stub.calls) != 1 {
		t.Fatalf("expected single call for unparseable date, got %v", stub.calls)
	}
}
