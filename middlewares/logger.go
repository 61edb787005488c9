package middlewares

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/formrelay/internal"
)

// RequestLogger logs one line per request once the response is complete.
// Server errors are logged at error level, client errors at warn.
// Place it before Recover so recovered panics are logged with their 500.
func RequestLogger() internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Status()
			c.Log(statusLevel(status), "request completed",
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Int("status", status),
				slog.Duration("duration", time.Since(start)),
			)
			return err
		}
	}
}

func statusLevel(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
