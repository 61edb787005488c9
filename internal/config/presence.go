package config

import (
	"context"
	"errors"
	"log/slog"
)

// Relay setting names.
const (
	KeySendGridAPIKey = "SENDGRID_API_KEY"
	KeyEmailTo        = "EMAIL_TO"
	KeyEmailFrom      = "EMAIL_FROM"
)

// Presence reports which relay settings are set, never their values.
// The JSON shape is what GET /env-debug returns.
type Presence struct {
	SendGridAPIKey bool `json:"SENDGRID_API_KEY_set"`
	EmailTo        bool `json:"EMAIL_TO"`
	EmailFrom      bool `json:"EMAIL_FROM"`
}

// Presence snapshots the relay settings.
func (c Config) Presence() Presence {
	return Presence{
		SendGridAPIKey: c.SendGrid.APIKey != "",
		EmailTo:        c.EmailTo != "",
		EmailFrom:      c.EmailFrom != "",
	}
}

// LogPresence writes one info line per relay setting with a boolean and
// an error line for each missing one.
func (c Config) LogPresence(ctx context.Context, log *slog.Logger) {
	for _, s := range c.settings() {
		log.InfoContext(ctx, "config presence", slog.String("key", s.key), slog.Bool("set", s.set))
	}
	for _, s := range c.settings() {
		if !s.set {
			log.ErrorContext(ctx, "missing required setting", slog.String("key", s.key))
		}
	}
}

// Validate returns every missing relay setting joined into one error.
func (c Config) Validate() error {
	var errs []error
	for _, s := range c.settings() {
		if !s.set {
			errs = append(errs, s.err)
		}
	}
	return errors.Join(errs...)
}

type setting struct {
	err error
	key string
	set bool
}

func (c Config) settings() []setting {
	p := c.Presence()
	return []setting{
		{key: KeySendGridAPIKey, set: p.SendGridAPIKey, err: ErrMissingAPIKey},
		{key: KeyEmailTo, set: p.EmailTo, err: ErrMissingEmailTo},
		{key: KeyEmailFrom, set: p.EmailFrom, err: ErrMissingFrom},
	}
}
