package testutil

import (
	"io"
	"net/http"
	"testing"
)

func TestNewStubClientRoutesThroughFunc(t *testing.T) {
	client := NewStubClient(func(req *http.Request) (*http.Response, error) {
		return Response(http.StatusTeapot, "short and stout"), nil
	})

	resp, err := client.Get("http://example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "short and stout" {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestNewBufferLoggerCaptures(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello")
	if buf.Len() == 0 {
		t.Fatal("expected log output in buffer")
	}
}
