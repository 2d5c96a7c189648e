package config

import "time"

const (
	envScheduleDate = "MLB_SCHEDULE_DATE"
	envTimezone     = "MLB_TIMEZONE"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envSnapshotDir  = "MLB_SNAPSHOT_DIR"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	// Schedule "today" is computed in US Eastern by default so late west-coast
	// games still count toward the current MLB slate.
	defaultTimezone = "America/New_York"
)

// HTTP timeouts shared by both upstream clients.
const defaultHTTPTimeout = 15 * time.Second
