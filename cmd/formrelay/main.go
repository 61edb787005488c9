// Command formrelay accepts contact-form submissions over HTTP and forwards
// them as email through SendGrid.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/dmitrymomot/formrelay/internal"
	"github.com/dmitrymomot/formrelay/internal/config"
	"github.com/dmitrymomot/formrelay/internal/relay"
	"github.com/dmitrymomot/formrelay/middlewares"
	"github.com/dmitrymomot/formrelay/pkg/health"
	"github.com/dmitrymomot/formrelay/pkg/logger"
	"github.com/dmitrymomot/formrelay/pkg/mailer"
	"github.com/dmitrymomot/formrelay/pkg/mailer/sendgrid"
	"github.com/dmitrymomot/formrelay/pkg/metrics"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(context.Background(), cfg, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run starts the relay and blocks until ctx is cancelled or a shutdown signal arrives.
func run(ctx context.Context, cfg config.Config, stdout io.Writer, opts ...internal.RunOption) error {
	log, flush := logger.Setup(stdout, cfg.Log, middlewares.RequestIDExtractor())

	log.InfoContext(ctx, "checking configuration")
	cfg.LogPresence(ctx, log)
	if cfg.StrictConfig {
		if err := cfg.Validate(); err != nil {
			_ = flush(ctx)
			return fmt.Errorf("strict config: %w", err)
		}
	}

	sender := sendgrid.New(cfg.SendGrid, sendgrid.WithLogger(log))
	app := newApp(cfg, log, sender)

	runOpts := append([]internal.RunOption{
		internal.WithContext(ctx),
		internal.Logger(log),
		internal.ShutdownTimeout(cfg.ShutdownTimeout),
		internal.ShutdownHook(flush),
	}, opts...)

	if err := app.Run(cfg.Addr(), runOpts...); err != nil {
		log.ErrorContext(ctx, "server stopped", slog.Any("error", err))
		return err
	}
	return nil
}

// newApp composes the HTTP application around sender.
func newApp(cfg config.Config, log *slog.Logger, sender mailer.Sender) *internal.App {
	envelope := relay.Envelope{To: cfg.EmailTo, From: cfg.EmailFrom}

	opts := []internal.Option{
		internal.WithCustomLogger(log),
		internal.WithMiddleware(
			middlewares.CORS(),
			middlewares.RequestID(),
			middlewares.RequestLogger(),
			middlewares.Recover(),
		),
		internal.WithErrorHandler(relay.ErrorHandler),
		internal.WithNotFoundHandler(relay.NotFound),
		internal.WithMethodNotAllowedHandler(relay.MethodNotAllowed),
		internal.WithHealthChecks(
			internal.WithReadinessCheck("sendgrid_api_key", health.RequireSetting(config.KeySendGridAPIKey, cfg.SendGrid.APIKey)),
			internal.WithReadinessCheck("email_to", health.RequireSetting(config.KeyEmailTo, cfg.EmailTo)),
			internal.WithReadinessCheck("email_from", health.RequireSetting(config.KeyEmailFrom, cfg.EmailFrom)),
		),
	}

	var relayOpts []relay.Option
	if cfg.MetricsEnabled {
		reg := metrics.NewRegistry()
		relayOpts = append(relayOpts, relay.WithMetrics(metrics.NewRelay(reg)))
		opts = append(opts, internal.WithMount("/metrics", metrics.Handler(reg)))
	}

	handlers := []internal.Handler{relay.NewRelayHandler(sender, envelope, relayOpts...)}
	if cfg.DebugEndpoints {
		handlers = append(handlers, relay.NewDebugHandler(sender, envelope, cfg.Presence(), relayOpts...))
	}
	opts = append(opts, internal.WithHandlers(handlers...))

	return internal.New(opts...)
}
