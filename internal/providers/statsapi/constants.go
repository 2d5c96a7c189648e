package statsapi

import "time"

const providerName = "statsapi"

const (
	defaultBaseURL     = "http://statsapi.mlb.com/api/v1"
	defaultHTTPTimeout = 15 * time.Second

	// sportId 1 is MLB.
	sportID      = "1"
	hydrateParam = "team,linescore"

	snapshotKind = "schedule"
)

// Abstract game states excluded from the picker. Final games are over and
// Preview games have not started, so neither has a live stream.
const (
	stateFinal   = "Final"
	statePreview = "Preview"
)
