package config

import "time"

const (
	envStatsAPIBaseURL = "MLB_STATSAPI_BASE_URL"
	envStatsAPITimeout = "MLB_STATSAPI_TIMEOUT"

	defaultStatsAPIBaseURL = "http://statsapi.mlb.com/api/v1"
)

// StatsAPIConfig controls how we talk to the MLB schedule API.
type StatsAPIConfig struct {
	BaseURL string
	Timeout time.Duration
}

func loadStatsAPI() StatsAPIConfig {
	return StatsAPIConfig{
		BaseURL: envOrDefault(envStatsAPIBaseURL, defaultStatsAPIBaseURL),
		Timeout: durationEnvOrDefault(envStatsAPITimeout, defaultHTTPTimeout),
	}
}
