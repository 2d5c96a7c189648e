package config

// Config holds runtime configuration for the CLI.
type Config struct {
	ScheduleDate string // optional YYYY-MM-DD override; empty means today
	Timezone     string
	LogLevel     string
	LogFormat    string
	StatsAPI     StatsAPIConfig
	Streamed     StreamedConfig
	Snapshots    SnapshotConfig
	Metrics      MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		ScheduleDate: envOrDefault(envScheduleDate, ""),
		Timezone:     envOrDefault(envTimezone, defaultTimezone),
		LogLevel:     envOrDefault(envLogLevel, ""),
		LogFormat:    envOrDefault(envLogFormat, ""),
		StatsAPI:     loadStatsAPI(),
		Streamed:     loadStreamed(),
		Snapshots:    loadSnapshots(),
		Metrics:      loadMetrics(),
	}
}
