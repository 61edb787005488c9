package relay

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/formrelay/internal"
	"github.com/dmitrymomot/formrelay/middlewares"
	"github.com/dmitrymomot/formrelay/pkg/mailer"
)

// Client-facing messages.
const (
	msgSent         = "Message sent"
	msgTooLarge     = "request body too large"
	msgInvalidBody  = "invalid request body"
	msgUnknownError = "unknown error"
	msgInternal     = "internal server error"
)

// logSendFailure logs a failed provider call, including the provider's
// response body when there is one.
func logSendFailure(c internal.Context, msg string, err error) {
	attrs := []any{slog.Any("error", err)}
	if pe, ok := mailer.AsProviderError(err); ok {
		attrs = append(attrs, slog.String("provider", pe.Provider))
		if pe.StatusCode > 0 {
			attrs = append(attrs, slog.Int("status", pe.StatusCode))
		}
		if pe.Body != "" {
			attrs = append(attrs, slog.String("provider_body", pe.Body))
		}
	}
	c.Log(slog.LevelError, msg, attrs...)
}

// ErrorHandler renders handler errors as {ok:false,error}. An HTTPError
// keeps its code and client message, a recovered panic becomes a generic 500
// and anything else is a 500 with err's text.
func ErrorHandler(c internal.Context, err error) error {
	if he, ok := internal.AsHTTPError(err); ok {
		if he.Code >= http.StatusInternalServerError {
			c.Log(slog.LevelError, "request failed", slog.Any("error", err))
		}
		return c.JSON(he.Code, Failure(he.Message))
	}
	c.Log(slog.LevelError, "request failed", slog.Any("error", err))
	if middlewares.IsPanicError(err) {
		return c.JSON(http.StatusInternalServerError, Failure(msgInternal))
	}
	return c.JSON(http.StatusInternalServerError, Failure(err.Error()))
}

// NotFound answers unknown routes.
func NotFound(c internal.Context) error {
	return c.JSON(http.StatusNotFound, Failure("not found"))
}

// MethodNotAllowed answers known routes called with the wrong method.
func MethodNotAllowed(c internal.Context) error {
	return c.JSON(http.StatusMethodNotAllowed, Failure("method not allowed"))
}
