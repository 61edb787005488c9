package mailer

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrNoSender indicates no sender address was specified.
	ErrNoSender = errors.New("email must have a sender")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("email must have a subject")

	// ErrSendFailed indicates email sending failed.
	ErrSendFailed = errors.New("failed to send email")
)

// ErrorDetail is a single error entry decoded from a provider response.
type ErrorDetail struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// ProviderError describes a failed delivery attempt.
// StatusCode is zero when the request never produced an HTTP response.
type ProviderError struct {
	Err        error         // Underlying cause (transport or precondition error)
	Provider   string        // Provider name, e.g. "sendgrid"
	Body       string        // Raw response body, if any
	Details    []ErrorDetail // Decoded error entries from Body
	StatusCode int           // HTTP status returned by the provider
}

func (e *ProviderError) Error() string {
	var b strings.Builder
	b.WriteString(e.Provider)
	if e.StatusCode > 0 {
		fmt.Fprintf(&b, ": %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}

	switch {
	case len(e.Details) > 0:
		msgs := make([]string, 0, len(e.Details))
		for _, d := range e.Details {
			if d.Message != "" {
				msgs = append(msgs, d.Message)
			}
		}
		if len(msgs) > 0 {
			b.WriteString(": ")
			b.WriteString(strings.Join(msgs, "; "))
		}
	case e.Err != nil:
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Is reports ErrSendFailed as a match so callers can test any delivery failure uniformly.
func (e *ProviderError) Is(target error) bool {
	return target == ErrSendFailed
}

// AsProviderError extracts the ProviderError from an error chain if present.
func AsProviderError(err error) (*ProviderError, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
