package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestFromContextReturnsStoredLogger(t *testing.T) {
	stored := NewLogger(Config{})
	ctx := WithLogger(context.Background(), stored)

	if got := FromContext(ctx, nil); got != stored {
		t.Fatal("expected stored logger to be returned")
	}
}

func TestFromContextFallsBack(t *testing.T) {
	fallback := NewLogger(Config{})

	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Fatal("expected fallback logger")
	}
	var missing context.Context
	if got := FromContext(missing, fallback); got != fallback {
		t.Fatal("expected fallback logger for nil context")
	}
}

func TestWithLoggerNilLoggerLeavesContext(t *testing.T) {
	ctx := context.Background()
	if got := WithLogger(ctx, nil); got != ctx {
		t.Fatal("expected unchanged context when logger is nil")
	}
	var fallback *slog.Logger
	if got := FromContext(ctx, fallback); got != nil {
		t.Fatal("expected nil fallback to pass through")
	}
}
