package testutil

import (
	"bytes"
	"log/slog"

	"github.com/preston-bernstein/bruins-live-service/internal/logging"
)

// NewBufferLogger returns a debug-level text logger writing into the returned buffer.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := logging.NewLogger(logging.Config{Level: "debug", Output: &buf})
	return logger, &buf
}
