package testutil

import (
	"bytes"
	"log/slog"

	"github.com/preston-bernstein/sports-catalog-service/internal/logging"
)

// NewBufferLogger returns a debug-level text logger built like the service logger, writing
// into the returned buffer so tests can assert on catalog log fields.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := logging.NewLogger(logging.Config{Level: "debug", Format: "text", Output: &buf})
	return logger, &buf
}
