package config

import "time"

const (
	envStreamedBaseURL = "MLB_STREAMS_BASE_URL"
	envStreamedTimeout = "MLB_STREAMS_TIMEOUT"

	defaultStreamedBaseURL = "https://streamed.su/api"
)

// StreamedConfig controls how we talk to the streaming-sources API.
type StreamedConfig struct {
	BaseURL string
	Timeout time.Duration
}

func loadStreamed() StreamedConfig {
	return StreamedConfig{
		BaseURL: envOrDefault(envStreamedBaseURL, defaultStreamedBaseURL),
		Timeout: durationEnvOrDefault(envStreamedTimeout, defaultHTTPTimeout),
	}
}
