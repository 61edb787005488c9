package relay

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/formrelay/internal"
	"github.com/dmitrymomot/formrelay/pkg/mailer"
)

// Metric endpoint labels.
const (
	EndpointSend         = "send"
	EndpointTestSendGrid = "test-sendgrid"
)

// Response is the JSON body of POST /send and of JSON failures in general.
type Response struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Failure builds the {ok:false,error} body.
func Failure(msg string) Response {
	if msg == "" {
		msg = msgUnknownError
	}
	return Response{Error: msg}
}

// RelayHandler serves POST /send.
type RelayHandler struct {
	sender   mailer.Sender
	envelope Envelope
	opts     options
}

// NewRelayHandler creates the relay endpoint. sender is shared across
// requests and must be safe for concurrent use.
func NewRelayHandler(sender mailer.Sender, envelope Envelope, opts ...Option) *RelayHandler {
	return &RelayHandler{
		sender:   sender,
		envelope: envelope,
		opts:     newOptions(opts...),
	}
}

// Routes implements internal.Handler.
func (h *RelayHandler) Routes(r internal.Router) {
	r.POST("/send", h.send)
}

func (h *RelayHandler) send(c internal.Context) error {
	body, err := io.ReadAll(http.MaxBytesReader(c.Response(), c.Request().Body, h.opts.maxBodySize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return internal.ErrRequestTooLarge(msgTooLarge, internal.WithError(err))
		}
		return internal.ErrBadRequest(msgInvalidBody, internal.WithError(err))
	}

	email := DecodeContact(c.Header("Content-Type"), body).Compose(h.envelope)

	start := time.Now()
	err = h.sender.Send(c, email)
	h.opts.metrics.ObserveSend(EndpointSend, time.Since(start), err)

	if err != nil {
		logSendFailure(c, "error sending email", err)
		return c.JSON(http.StatusInternalServerError, Failure(err.Error()))
	}

	c.Log(slog.LevelInfo, "message sent")
	return c.JSON(http.StatusOK, Response{OK: true, Message: msgSent})
}
