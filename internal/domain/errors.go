package domain

import (
	"errors"
	"fmt"
)

// ConfigError reports a missing or unusable configuration (config document, timezone).
type ConfigError struct {
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	msg := e.Reason
	if msg == "" {
		msg = "invalid configuration"
	}
	if e.Err != nil {
		return fmt.Sprintf("config: %s: %v", msg, e.Err)
	}
	return "config: " + msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// DataError reports an upstream payload missing a field required to build a document.
type DataError struct {
	GameID string
	Field  string
}

func (e *DataError) Error() string {
	if e.GameID != "" {
		return fmt.Sprintf("data: game %s missing %s", e.GameID, e.Field)
	}
	return fmt.Sprintf("data: missing %s", e.Field)
}

// IsConfigError reports whether err wraps a ConfigError.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}

// IsDataError reports whether err wraps a DataError.
func IsDataError(err error) bool {
	var dataErr *DataError
	return errors.As(err, &dataErr)
}
