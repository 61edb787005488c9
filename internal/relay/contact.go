package relay

import (
	"bytes"
	"encoding/json"
	"mime"
	"strings"

	"github.com/dmitrymomot/formrelay/pkg/mailer"
)

// Contact field defaults.
const (
	DefaultName    = "No name"
	DefaultEmail   = "no-reply@example.com"
	DefaultMessage = ""
)

const subjectPrefix = "Website message from "

// Contact is the inbound form payload. Every field is untrusted freeform text.
type Contact struct {
	Name    string
	Email   string
	Message string
}

// Envelope carries the configured addresses. Request input never reaches it.
type Envelope struct {
	To   string
	From string
}

// DefaultContact returns a Contact with every field defaulted.
func DefaultContact() Contact {
	return Contact{Name: DefaultName, Email: DefaultEmail, Message: DefaultMessage}
}

// DecodeContact turns a request body into a Contact. It never fails:
// anything that is not a JSON object yields the defaults, and so does a
// Content-Type that is present but not JSON. Per field, a JSON string is
// used verbatim (empty included), a number or boolean becomes its literal
// text, and a missing, null, object or array value falls back to the default.
func DecodeContact(contentType string, body []byte) Contact {
	c := DefaultContact()
	if !isJSONContentType(contentType) {
		return c
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return c
	}

	if v, ok := fieldText(fields["name"]); ok {
		c.Name = v
	}
	if v, ok := fieldText(fields["email"]); ok {
		c.Email = v
	}
	if v, ok := fieldText(fields["message"]); ok {
		c.Message = v
	}
	return c
}

// Compose builds the outbound message. Only Subject and Text derive from c.
func (c Contact) Compose(env Envelope) *mailer.Email {
	return &mailer.Email{
		To:      []string{env.To},
		From:    env.From,
		Subject: subjectPrefix + c.Name,
		Text:    "From: " + c.Email + "\n\n" + c.Message,
	}
}

// fieldText reports the text form of a scalar JSON value.
func fieldText(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", false
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	case 't', 'f':
		return string(raw), true
	case 'n', '{', '[':
		return "", false
	default:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return "", false
		}
		return n.String(), true
	}
}

// isJSONContentType accepts an absent type, application/json and any +json type.
func isJSONContentType(contentType string) bool {
	if strings.TrimSpace(contentType) == "" {
		return true
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}
