package providers

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrProviderUnavailable is returned when a decorator has no provider to delegate to.
var ErrProviderUnavailable = errors.New("provider unavailable")

// UpstreamError reports a failed upstream call: a transport failure or a non-2xx response.
type UpstreamError struct {
	Provider   string
	Op         string
	StatusCode int
	RetryAfter time.Duration
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	prefix := e.Provider
	if prefix == "" {
		prefix = "upstream"
	}
	if e.Op != "" {
		prefix += " " + e.Op
	}
	switch {
	case e.StatusCode > 0 && e.Body != "":
		return fmt.Sprintf("%s: unexpected status %d: %s", prefix, e.StatusCode, e.Body)
	case e.StatusCode > 0:
		return fmt.Sprintf("%s: unexpected status %d", prefix, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", prefix, e.Err)
	default:
		return prefix + ": request failed"
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// RateLimited reports whether the upstream answered 429.
func (e *UpstreamError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// AsUpstreamError attempts to unwrap an error into an UpstreamError.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr, true
	}
	return nil, false
}

// IsUpstreamError reports whether err wraps an UpstreamError.
func IsUpstreamError(err error) bool {
	_, ok := AsUpstreamError(err)
	return ok
}
