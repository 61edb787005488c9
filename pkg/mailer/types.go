package mailer

import "errors"

// Email represents a fully-prepared email message ready for sending.
type Email struct {
	Subject string   // Email subject
	Text    string   // Plain text body
	HTML    string   // Optional HTML alternative
	From    string   // Sender address, must be verified with the provider
	To      []string // Recipients (at least one required)
}

// Validate reports which required fields are missing.
// The returned error joins ErrNoRecipient, ErrNoSender and ErrNoSubject as applicable.
func (e *Email) Validate() error {
	var errs []error
	if len(e.To) == 0 || e.To[0] == "" {
		errs = append(errs, ErrNoRecipient)
	}
	if e.From == "" {
		errs = append(errs, ErrNoSender)
	}
	if e.Subject == "" {
		errs = append(errs, ErrNoSubject)
	}
	return errors.Join(errs...)
}
