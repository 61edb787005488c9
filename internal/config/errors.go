package config

import "errors"

var (
	ErrInvalidConfig  = errors.New("config: invalid environment")
	ErrMissingAPIKey  = errors.New("config: SENDGRID_API_KEY is not set")
	ErrMissingEmailTo = errors.New("config: EMAIL_TO is not set")
	ErrMissingFrom    = errors.New("config: EMAIL_FROM is not set")
)
