// Package logger provides structured logging with context extraction and optional Sentry integration.
//
// It extends log/slog with two capabilities: attributes pulled from the request
// context on every call (request IDs), and shipping warnings and errors to Sentry.
//
// # Basic Usage
//
//	log := logger.New(middlewares.RequestIDExtractor())
//	log.InfoContext(ctx, "message sent")
//	// {"level":"INFO","msg":"message sent","request_id":"..."}
//
// # Process Setup
//
// Setup reads a Config (parsed with caarlos0/env) and returns the logger plus a
// flush function to run on shutdown:
//
//	log, flush := logger.Setup(os.Stdout, cfg.Log, middlewares.RequestIDExtractor())
//	defer flush(context.Background())
//
// If SENTRY_DSN is empty, logging stays on stdout only, so the same code path
// works in development and production.
//
// # Context Extractors
//
//	type ContextExtractor func(ctx context.Context) (slog.Attr, bool)
//
// Extractors run on every record; return false to skip the attribute.
// LogHandlerDecorator applies them to any slog.Handler.
package logger
