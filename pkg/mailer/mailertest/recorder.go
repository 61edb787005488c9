// Package mailertest provides an in-memory mailer.Sender for tests.
package mailertest

import (
	"context"
	"sync"

	"github.com/dmitrymomot/formrelay/pkg/mailer"
)

// Recorder is a mailer.Sender that stores every message it receives.
// It is safe for concurrent use.
type Recorder struct {
	err    error
	emails []mailer.Email
	mu     sync.Mutex
}

// NewRecorder creates a Recorder that accepts every message.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// NewFailing creates a Recorder that records messages and then returns err.
func NewFailing(err error) *Recorder {
	return &Recorder{err: err}
}

// Send implements mailer.Sender.
func (r *Recorder) Send(_ context.Context, email *mailer.Email) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *email
	cp.To = append([]string(nil), email.To...)
	r.emails = append(r.emails, cp)

	return r.err
}

// Emails returns a copy of the recorded messages in arrival order.
func (r *Recorder) Emails() []mailer.Email {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]mailer.Email(nil), r.emails...)
}

// Last returns the most recently recorded message.
func (r *Recorder) Last() (mailer.Email, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.emails) == 0 {
		return mailer.Email{}, false
	}
	return r.emails[len(r.emails)-1], true
}
