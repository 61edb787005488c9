// Package mailer provides a provider-neutral email sending interface.
//
// The package separates the message model from delivery so the relay can be
// tested against fakes while production wires a concrete provider.
//
// # Architecture
//
//   - Sender: interface that email providers implement
//   - Email: a fully-prepared plain-text message
//   - ProviderError: the single error type a provider returns on failure
//
// # Usage
//
//	import (
//		"github.com/dmitrymomot/formrelay/pkg/mailer"
//		"github.com/dmitrymomot/formrelay/pkg/mailer/sendgrid"
//	)
//
//	sender := sendgrid.New(sendgrid.Config{APIKey: os.Getenv("SENDGRID_API_KEY")})
//
//	err := sender.Send(ctx, &mailer.Email{
//		From:    "site@example.com",
//		To:      []string{"owner@example.com"},
//		Subject: "Website message from Ann",
//		Text:    "From: ann@example.com\n\nHi",
//	})
//	if pe, ok := mailer.AsProviderError(err); ok {
//		log.Error("send failed", "status", pe.StatusCode, "body", pe.Body)
//	}
//
// # Custom Providers
//
// Implement the Sender interface, or wrap a function with SenderFunc:
//
//	var noop mailer.Sender = mailer.SenderFunc(func(ctx context.Context, e *mailer.Email) error {
//		return nil
//	})
//
// # Errors
//
//   - ErrNoRecipient, ErrNoSender, ErrNoSubject: message precondition failures
//   - ErrSendFailed: matches every *ProviderError via errors.Is
//   - ProviderError: status code, raw body and decoded details of a failed call
package mailer
