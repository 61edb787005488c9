// Package middlewares provides the HTTP middleware formrelay runs in front
// of its handlers.
//
// # CORS
//
// CORS answers browser preflights with 204 and marks every response with
// Access-Control-Allow-Origin. The default allows any origin, which is what
// a form relay embedded on arbitrary static sites needs:
//
//	internal.WithMiddleware(middlewares.CORS())
//
// # Request ID
//
// RequestID reuses an upstream X-Request-ID or X-Correlation-ID, or generates
// a UUID. Pair it with RequestIDExtractor so every log line carries it:
//
//	log := logger.New(middlewares.RequestIDExtractor())
//
// # Request logging and panics
//
// RequestLogger writes one line per request with method, path, status and
// duration. Recover converts panics into *PanicError for the app's
// ErrorHandler. Put the logger first so recovered panics are logged with
// their final status.
//
// # Recommended order
//
//	internal.WithMiddleware(
//	    middlewares.CORS(),
//	    middlewares.RequestID(),
//	    middlewares.RequestLogger(),
//	    middlewares.Recover(),
//	)
package middlewares
