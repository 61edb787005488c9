package logger

import (
	"io"
	"log/slog"
)

// NewNope creates a logger that discards all output.
// Used as the default wherever logging is optional.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
