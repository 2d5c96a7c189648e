package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.ScheduleDate != "" {
		t.Fatalf("expected empty schedule date, got %q", cfg.ScheduleDate)
	}
	if cfg.Timezone != "America/New_York" {
		t.Fatalf("unexpected timezone default: %q", cfg.Timezone)
	}
	if cfg.StatsAPI.BaseURL != "http://statsapi.mlb.com/api/v1" {
		t.Fatalf("unexpected statsapi base URL: %q", cfg.StatsAPI.BaseURL)
	}
	if cfg.Streamed.BaseURL != "https://streamed.su/api" {
		t.Fatalf("unexpected streamed base URL: %q", cfg.Streamed.BaseURL)
	}
	if cfg.StatsAPI.Timeout != 15*time.Second || cfg.Streamed.Timeout != 15*time.Second {
		t.Fatalf("unexpected timeouts: %v / %v", cfg.StatsAPI.Timeout, cfg.Streamed.Timeout)
	}
	if cfg.Snapshots.Enabled() {
		t.Fatal("expected snapshots to be disabled by default")
	}
	if cfg.Metrics.Enabled {
		t.Fatal("expected metrics to be disabled by default")
	}
	if cfg.Metrics.ServiceName != "mlb-streams" {
		t.Fatalf("unexpected metrics service name: %q", cfg.Metrics.ServiceName)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MLB_SCHEDULE_DATE", "2024-06-01")
	t.Setenv("MLB_STATSAPI_BASE_URL", "http://stats.example.com/")
	t.Setenv("MLB_STREAMS_BASE_URL", "http://streams.example.com")
	t.Setenv("MLB_STREAMS_TIMEOUT", "5s")
	t.Setenv("MLB_SNAPSHOT_DIR", "/tmp/dumps")
	t.Setenv("METRICS_ENABLED", "true")

	cfg := Load()

	if cfg.ScheduleDate != "2024-06-01" {
		t.Fatalf("unexpected schedule date: %q", cfg.ScheduleDate)
	}
	if cfg.StatsAPI.BaseURL != "http://stats.example.com/" {
		t.Fatalf("unexpected statsapi base URL: %q", cfg.StatsAPI.BaseURL)
	}
	if cfg.Streamed.Timeout != 5*time.Second {
		t.Fatalf("unexpected streamed timeout: %v", cfg.Streamed.Timeout)
	}
	if !cfg.Snapshots.Enabled() || cfg.Snapshots.Dir != "/tmp/dumps" {
		t.Fatalf("unexpected snapshot config: %+v", cfg.Snapshots)
	}
	if !cfg.Metrics.Enabled {
		t.Fatal("expected metrics to be enabled")
	}
}
