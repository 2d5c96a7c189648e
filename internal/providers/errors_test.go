package providers

import (
	"errors"
	"fmt"
	"testing"
)

func TestStatusErrorMessage(t *testing.T) {
	err := &StatusError{Provider: "statsapi", StatusCode: 503, Message: "service unavailable"}
	want := "statsapi: service unavailable (status=503)"
	if got := err.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}

	bare := &StatusError{StatusCode: 500}
	if got := bare.Error(); got != "unexpected upstream status (status=500)" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestAsStatusError(t *testing.T) {
	inner := &StatusError{Provider: "streamed", StatusCode: 404}
	wrapped := fmt.Errorf("fetch failed: %w", inner)

	got, ok := AsStatusError(wrapped)
	if !ok || got.StatusCode != 404 {
		t.Fatalf("expected unwrapped status error, got %v ok=%v", got, ok)
	}

	if _, ok := AsStatusError(errors.New("plain")); ok {
		t.Fatal("expected plain error not to unwrap")
	}
}
