package sendgrid

// DefaultHost is the SendGrid API base URL.
const DefaultHost = "https://api.sendgrid.com"

// Config holds SendGrid email provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIKey string `env:"SENDGRID_API_KEY"`
	Host   string `env:"SENDGRID_HOST" envDefault:"https://api.sendgrid.com"`
}
