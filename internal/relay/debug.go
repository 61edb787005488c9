package relay

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/formrelay/internal"
	"github.com/dmitrymomot/formrelay/internal/config"
	"github.com/dmitrymomot/formrelay/pkg/mailer"
)

// Canned /test-sendgrid message.
const (
	TestSubject = "SendGrid test from server"
	TestText    = "This is a SendGrid test."
)

const (
	testSentText   = "✅ Test email sent. Check SendGrid activity and inbox."
	testFailPrefix = "❌ Test failed: "
)

// DebugHandler serves the operator endpoints GET /env-debug and GET /test-sendgrid.
type DebugHandler struct {
	sender   mailer.Sender
	envelope Envelope
	presence config.Presence
	opts     options
}

// NewDebugHandler creates the debug endpoints. presence is reported as is.
func NewDebugHandler(sender mailer.Sender, envelope Envelope, presence config.Presence, opts ...Option) *DebugHandler {
	return &DebugHandler{
		sender:   sender,
		envelope: envelope,
		presence: presence,
		opts:     newOptions(opts...),
	}
}

// Routes implements internal.Handler.
func (h *DebugHandler) Routes(r internal.Router) {
	r.GET("/env-debug", h.envDebug)
	r.GET("/test-sendgrid", h.testSendGrid)
}

func (h *DebugHandler) envDebug(c internal.Context) error {
	return c.JSON(http.StatusOK, h.presence)
}

func (h *DebugHandler) testSendGrid(c internal.Context) error {
	email := &mailer.Email{
		To:      []string{h.envelope.To},
		From:    h.envelope.From,
		Subject: TestSubject,
		Text:    TestText,
	}

	start := time.Now()
	err := h.sender.Send(c, email)
	h.opts.metrics.ObserveSend(EndpointTestSendGrid, time.Since(start), err)

	if err != nil {
		logSendFailure(c, "test send failed", err)
		msg := err.Error()
		if msg == "" {
			msg = msgUnknownError
		}
		return c.String(http.StatusInternalServerError, testFailPrefix+msg)
	}
	return c.String(http.StatusOK, testSentText)
}
