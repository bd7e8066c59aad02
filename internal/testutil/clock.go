package testutil

import (
	"time"

	"github.com/preston-bernstein/bruins-live-service/internal/timeutil"
)

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// MustParseInstant parses a document timestamp (RFC 3339, optional fraction) or panics.
func MustParseInstant(v string) time.Time {
	t, ok := timeutil.ParseInstant(v)
	if !ok {
		panic("testutil: invalid instant " + v)
	}
	return t
}
