// Package internal is the HTTP runtime behind formrelay: a thin layer over
// chi that gives handlers a Context, error returns and a graceful server loop.
//
// # Core Types
//
//   - App: routing, middleware and the server lifecycle
//   - Context: request/response access plus logging helpers
//   - Router: the interface handlers use to declare routes
//   - Handler: implemented by types that declare routes
//   - HandlerFunc: route handler signature returning an error
//   - Middleware: wraps a HandlerFunc
//   - ErrorHandler: renders errors returned from handlers
//
// # Context as context.Context
//
// Context embeds context.Context, so it can be handed directly to calls
// that block, such as a mail provider request:
//
//	func (h *RelayHandler) send(c internal.Context) error {
//	    if err := h.sender.Send(c, email); err != nil {
//	        return err
//	    }
//	    return c.JSON(http.StatusOK, okResponse)
//	}
//
// # Application Structure
//
//	app := internal.New(
//	    internal.WithMiddleware(middlewares.CORS(), middlewares.Recover()),
//	    internal.WithHandlers(relayHandler, debugHandler),
//	    internal.WithHealthChecks(internal.WithReadinessCheck("email_to", check)),
//	    internal.WithMount("/metrics", metricsHandler),
//	)
//	err := app.Run(":3000", internal.Logger(log))
//
// Global middleware is installed with chi's Use and therefore runs before
// route matching. CORS preflight requests and unknown routes pass through it.
//
// # Error Handling
//
// Handlers return errors instead of writing failure responses themselves.
// The configured ErrorHandler renders them; without one, an HTTPError is
// answered with its own code and message and anything else with a plain 500.
// Errors returned after the response was started are only logged.
//
// # Graceful Shutdown
//
// Run blocks until SIGINT, SIGTERM or cancellation of the context passed via
// WithContext. It then stops accepting connections, waits for in-flight
// requests up to ShutdownTimeout and runs shutdown hooks in order.
package internal
