package streamed

import "time"

const providerName = "streamed"

const (
	defaultBaseURL     = "https://streamed.su/api"
	defaultHTTPTimeout = 15 * time.Second

	// Fixed category: this tool only resolves baseball matches.
	matchCategory = "baseball"

	snapshotKindMatches = "matches"
	snapshotKindStreams = "streams"
)
