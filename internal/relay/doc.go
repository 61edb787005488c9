// Package relay implements the form-to-email endpoints.
//
// POST /send decodes a loosely shaped JSON contact payload with
// DecodeContact, turns it into a message addressed with the configured
// Envelope and hands it to a mailer.Sender in a single call. GET /env-debug
// and GET /test-sendgrid let an operator check the configuration and the
// provider without going through a form.
//
// The handlers hold only immutable state and are safe for concurrent use
// as long as the injected Sender is.
package relay
