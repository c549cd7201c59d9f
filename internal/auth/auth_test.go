package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/garrettladley/ecoscan/internal/apperr"
)

func TestEnvChecker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		apiKey string
		want   bool
	}{
		{name: "key set", apiKey: "sk-123", want: true},
		{name: "empty", apiKey: "", want: false},
		{name: "whitespace", apiKey: "  \t", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewEnvChecker(tt.apiKey).IsAuthenticated(context.Background())
			if err != nil {
				t.Fatalf("IsAuthenticated() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("IsAuthenticated() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnvChecker_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewEnvChecker("key").IsAuthenticated(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("IsAuthenticated() error = %v, want %v", err, context.Canceled)
	}
}

func TestEnvChecker_MalformedKey(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"sk 123", "sk-\t123", "sk-\x00"} {
		got, err := NewEnvChecker(key).IsAuthenticated(context.Background())
		if got {
			t.Errorf("IsAuthenticated(%q) = true, want false", key)
		}
		appErr := apperr.AsError(err)
		if appErr == nil || appErr.Kind != apperr.KindUnauthorized {
			t.Errorf("IsAuthenticated(%q) error = %v, want unauthorized", key, err)
		}
	}
}
