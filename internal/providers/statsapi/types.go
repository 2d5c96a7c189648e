package statsapi

type scheduleResponse struct {
	Dates []dateEntry `json:"dates"`
}

type dateEntry struct {
	Date  string      `json:"date"`
	Games []gameEntry `json:"games"`
}

type gameEntry struct {
	GamePK    int             `json:"gamePk"`
	Status    statusEntry     `json:"status"`
	Teams     teamsEntry      `json:"teams"`
	Linescore *linescoreEntry `json:"linescore"`
}

type statusEntry struct {
	AbstractGameState string `json:"abstractGameState"`
	AbstractGameCode  string `json:"abstractGameCode"`
	DetailedState     string `json:"detailedState"`
}

type teamsEntry struct {
	Away sideEntry `json:"away"`
	Home sideEntry `json:"home"`
}

type sideEntry struct {
	// Score is absent for games that have not started; nil defaults to 0.
	Score *int      `json:"score"`
	Team  teamEntry `json:"team"`
}

type teamEntry struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type linescoreEntry struct {
	CurrentInningOrdinal string `json:"currentInningOrdinal"`
	InningHalf           string `json:"inningHalf"`
}
