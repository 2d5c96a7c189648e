package statsapi

import (
	"encoding/json"
	"fmt"

	"mlb-streams/internal/domain"
)

// decodeSchedule parses a schedule payload and maps its live games. All
// returned dates are flattened; the API normally returns exactly one.
func decodeSchedule(body []byte) ([]domain.Game, error) {
	var payload scheduleResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%s: decode schedule response: %w", providerName, err)
	}

	games := make([]domain.Game, 0)
	for _, date := range payload.Dates {
		for _, entry := range date.Games {
			if skipGame(entry) {
				continue
			}
			game, err := mapGame(entry)
			if err != nil {
				return nil, err
			}
			games = append(games, game)
		}
	}
	return games, nil
}

func skipGame(entry gameEntry) bool {
	state := entry.Status.AbstractGameState
	return state == stateFinal || state == statePreview
}

func mapGame(entry gameEntry) (domain.Game, error) {
	away := entry.Teams.Away
	home := entry.Teams.Home

	if away.Team.Abbreviation == "" || home.Team.Abbreviation == "" {
		return domain.Game{}, fmt.Errorf("%s: game %d missing team abbreviation", providerName, entry.GamePK)
	}
	if away.Team.Name == "" || home.Team.Name == "" {
		return domain.Game{}, fmt.Errorf("%s: game %d missing team name", providerName, entry.GamePK)
	}

	inning := domain.DefaultInning
	half := domain.DefaultInningHalf
	if entry.Linescore != nil {
		if entry.Linescore.CurrentInningOrdinal != "" {
			inning = entry.Linescore.CurrentInningOrdinal
		}
		if entry.Linescore.InningHalf != "" {
			half = entry.Linescore.InningHalf
		}
	}

	return domain.Game{
		Title:    domain.FormatTitle(away.Team.Abbreviation, scoreOrZero(away.Score), home.Team.Abbreviation, scoreOrZero(home.Score), half, inning),
		MatchKey: domain.MatchKey(away.Team.Name, home.Team.Name),
	}, nil
}

func scoreOrZero(score *int) int {
	if score == nil {
		return 0
	}
	return *score
}
