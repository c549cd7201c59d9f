package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/ecoscan/internal/apperr"
	"github.com/garrettladley/ecoscan/internal/xslog"
)

func TestRead_Defaults(t *testing.T) {
	cfg, err := Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	want := Config{
		LogLevel:     xslog.LevelInfo,
		TickInterval: 100 * time.Millisecond,
		ResultsDelay: 500 * time.Millisecond,
		ToastTTL:     3 * time.Second,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Read() mismatch (-want +got):\n%s", diff)
	}
}

func TestRead_Overrides(t *testing.T) {
	t.Setenv("ECOSCAN_DB_PATH", "/tmp/scans.db")
	t.Setenv("ECOSCAN_LOG_LEVEL", "DEBUG")
	t.Setenv("ECOSCAN_API_KEY", "secret")
	t.Setenv("ECOSCAN_TICK_INTERVAL", "50ms")
	t.Setenv("ECOSCAN_TOAST_TTL", "5s")

	cfg, err := Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	want := Config{
		DBPath:       "/tmp/scans.db",
		LogLevel:     xslog.LevelDebug,
		APIKey:       "secret",
		TickInterval: 50 * time.Millisecond,
		ResultsDelay: 500 * time.Millisecond,
		ToastTTL:     5 * time.Second,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Read() mismatch (-want +got):\n%s", diff)
	}
}

func TestRead_InvalidLevel(t *testing.T) {
	t.Setenv("ECOSCAN_LOG_LEVEL", "loud")

	if _, err := Read(); err == nil {
		t.Error("Read() error = nil, want error for invalid level")
	}
}

func TestRead_InvalidDurations(t *testing.T) {
	t.Setenv("ECOSCAN_TICK_INTERVAL", "0s")
	t.Setenv("ECOSCAN_RESULTS_DELAY", "-1s")
	t.Setenv("ECOSCAN_TOAST_TTL", "-3s")

	_, err := Read()
	appErr := apperr.AsError(err)
	if appErr == nil {
		t.Fatalf("Read() error = %v, want validation error", err)
	}

	want := map[string]string{
		"TICK_INTERVAL": "must be positive",
		"RESULTS_DELAY": "must not be negative",
		"TOAST_TTL":     "must be positive",
	}
	if diff := cmp.Diff(want, appErr.Fields); diff != "" {
		t.Errorf("Fields mismatch (-want +got):\n%s", diff)
	}
}
