package internal

// Handler declares routes on a router.
//
// Example:
//
//	type RelayHandler struct {
//	    sender mailer.Sender
//	}
//
//	func (h *RelayHandler) Routes(r internal.Router) {
//	    r.POST("/send", h.send)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// Returning a non-nil error hands the request to the app's ErrorHandler,
// unless the handler already wrote a response.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler renders errors returned from handlers.
type ErrorHandler func(Context, error) error
