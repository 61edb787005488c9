package logger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

const defaultFlushTimeout = 2 * time.Second

// ErrSentryFlushTimeout is returned when buffered Sentry events could not be delivered in time.
var ErrSentryFlushTimeout = errors.New("logger: sentry flush timed out")

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	// MinLevel selects which records are stored as Sentry logs: warn+error, or error only.
	MinLevel slog.Level `env:"SENTRY_MIN_LEVEL" envDefault:"warn"`
}

// Config holds process logger configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Sentry SentryConfig
	Level  slog.Level `env:"LOG_LEVEL" envDefault:"info"`
}

// FlushFunc drains buffered log destinations before shutdown.
type FlushFunc func(ctx context.Context) error

// Setup builds the process logger writing JSON to w.
// When cfg.Sentry.DSN is set, warnings and errors are also shipped to Sentry;
// an empty DSN or a failed Sentry init falls back to w only.
// The returned FlushFunc is always non-nil.
func Setup(w io.Writer, cfg Config, extractors ...ContextExtractor) (*slog.Logger, FlushFunc) {
	base := jsonHandler(w, cfg.Level)
	noFlush := func(context.Context) error { return nil }

	if cfg.Sentry.DSN == "" {
		return slog.New(NewLogHandlerDecorator(base, extractors...)), noFlush
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.Sentry.DSN,
		Environment: cfg.Sentry.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(base).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(NewLogHandlerDecorator(base, extractors...)), noFlush
	}

	logLevels := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.Sentry.MinLevel >= slog.LevelError {
		logLevels = []slog.Level{slog.LevelError}
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevels,
	}.NewSentryHandler(context.Background())

	l := slog.New(NewLogHandlerDecorator(newFanoutHandler(base, sentryHandler), extractors...))
	return l, flushSentry
}

func flushSentry(ctx context.Context) error {
	timeout := defaultFlushTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	if !sentry.Flush(timeout) {
		return ErrSentryFlushTimeout
	}
	return nil
}
