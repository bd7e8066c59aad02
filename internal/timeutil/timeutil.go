package timeutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/preston-bernstein/bruins-live-service/internal/domain"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// InstantLayout renders UTC instants with millisecond precision and a Z suffix.
const InstantLayout = "2006-01-02T15:04:05.000Z07:00"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatInstant formats t as an ISO-8601 UTC timestamp.
func FormatInstant(t time.Time) string {
	return t.UTC().Format(InstantLayout)
}

// ParseInstant parses an RFC 3339 timestamp as published by upstream providers.
func ParseInstant(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ResolveLocation loads an IANA timezone, reporting failures as ConfigError.
func ResolveLocation(tz string) (*time.Location, error) {
	if strings.TrimSpace(tz) == "" {
		return nil, &domain.ConfigError{Reason: "timezone is empty"}
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, &domain.ConfigError{Reason: fmt.Sprintf("invalid timezone %q", tz), Err: err}
	}
	return loc, nil
}

// DateKey returns the civil date of instant in tz. A zero instant means now.
func DateKey(tz string, instant time.Time) (string, error) {
	loc, err := ResolveLocation(tz)
	if err != nil {
		return "", err
	}
	if instant.IsZero() {
		instant = time.Now()
	}
	return FormatDate(instant.In(loc)), nil
}

// SeasonID returns the July-aligned season identifier (e.g. "20252026") for instant in UTC.
func SeasonID(instant time.Time) string {
	utc := instant.UTC()
	startYear := utc.Year()
	if utc.Month() < time.July {
		startYear--
	}
	return fmt.Sprintf("%d%d", startYear, startYear+1)
}
