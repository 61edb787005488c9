// Package sendgrid implements mailer.Sender on top of the SendGrid v3 Mail Send API.
package sendgrid

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/dmitrymomot/formrelay/pkg/logger"
	"github.com/dmitrymomot/formrelay/pkg/mailer"
)

// ProviderName identifies SendGrid in mailer.ProviderError.
const ProviderName = "sendgrid"

const mailSendEndpoint = "/v3/mail/send"

// Sender implements mailer.Sender using the SendGrid API.
// The API key is fixed at construction; Sender is safe for concurrent use.
type Sender struct {
	logger *slog.Logger
	config Config
}

// Option configures a Sender.
type Option func(*Sender)

// WithLogger sets the logger used for delivery diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sender) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a new SendGrid sender.
// An empty API key is accepted; the provider rejects the first send instead.
func New(cfg Config, opts ...Option) *Sender {
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	s := &Sender{
		config: cfg,
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send implements mailer.Sender. It performs exactly one API call.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	if err := email.Validate(); err != nil {
		return &mailer.ProviderError{Provider: ProviderName, Err: err}
	}

	// sendgrid.Client stores the body on its embedded request, so build one per call.
	req := sendgrid.GetRequest(s.config.APIKey, mailSendEndpoint, s.config.Host)
	req.Method = rest.Post
	client := &sendgrid.Client{Request: req}

	resp, err := client.SendWithContext(ctx, buildMessage(email))
	if err != nil {
		return &mailer.ProviderError{Provider: ProviderName, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &mailer.ProviderError{
			Provider:   ProviderName,
			StatusCode: resp.StatusCode,
			Body:       resp.Body,
			Details:    decodeErrors(resp.Body),
		}
	}

	if ids := resp.Headers["X-Message-Id"]; len(ids) > 0 {
		s.logger.DebugContext(ctx, "sendgrid accepted message", slog.String("message_id", ids[0]))
	}

	return nil
}

func buildMessage(email *mailer.Email) *mail.SGMailV3 {
	m := mail.NewV3Mail()
	m.SetFrom(mail.NewEmail("", email.From))
	m.Subject = email.Subject

	p := mail.NewPersonalization()
	for _, to := range email.To {
		p.AddTos(mail.NewEmail("", to))
	}
	m.AddPersonalizations(p)

	// SendGrid requires text/plain to precede text/html.
	if email.Text != "" {
		m.AddContent(mail.NewContent("text/plain", email.Text))
	}
	if email.HTML != "" {
		m.AddContent(mail.NewContent("text/html", email.HTML))
	}

	return m
}

// decodeErrors parses the {"errors":[...]} envelope SendGrid returns on failure.
func decodeErrors(body string) []mailer.ErrorDetail {
	if body == "" {
		return nil
	}
	var payload struct {
		Errors []mailer.ErrorDetail `json:"errors"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return nil
	}
	return payload.Errors
}
