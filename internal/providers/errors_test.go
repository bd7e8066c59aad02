package providers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestUpstreamErrorString(t *testing.T) {
	err := &UpstreamError{
		Provider:   "nhl",
		Op:         "schedule",
		StatusCode: 503,
		Body:       "unavailable",
	}
	if got := err.Error(); got != "nhl schedule: unexpected status 503: unavailable" {
		t.Fatalf("unexpected error string %q", got)
	}

	noBody := &UpstreamError{Provider: "nhl", StatusCode: 502}
	if got := noBody.Error(); !strings.Contains(got, "502") {
		t.Fatalf("expected status in error string, got %q", got)
	}

	transport := &UpstreamError{Provider: "nhl", Op: "landing", Err: context.DeadlineExceeded}
	if !errors.Is(transport, context.DeadlineExceeded) {
		t.Fatalf("expected wrapped cause to unwrap")
	}

	if got := (&UpstreamError{}).Error(); got == "" {
		t.Fatalf("expected fallback message")
	}
}

func TestAsUpstreamErrorUnwrapsWrapped(t *testing.T) {
	inner := &UpstreamError{Provider: "nhl", StatusCode: 429, RetryAfter: 5 * time.Second}
	wrapped := fmt.Errorf("poll: %w", inner)

	upErr, ok := AsUpstreamError(wrapped)
	if !ok || upErr != inner {
		t.Fatalf("expected to unwrap upstream error")
	}
	if !upErr.RateLimited() {
		t.Fatalf("expected 429 to be rate limited")
	}
	if !IsUpstreamError(wrapped) {
		t.Fatalf("expected IsUpstreamError to match")
	}
	if IsUpstreamError(errors.New("other")) {
		t.Fatalf("expected plain error not to match")
	}
}
