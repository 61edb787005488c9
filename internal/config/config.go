// Package config loads the relay's process configuration from the environment.
package config

import (
	"fmt"
	"net"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/formrelay/pkg/logger"
	"github.com/dmitrymomot/formrelay/pkg/mailer/sendgrid"
)

// Config is the typed process configuration. It is loaded once in main and
// handed to the components that need it; nothing else reads the environment.
type Config struct {
	Port      string `env:"PORT" envDefault:"3000"`
	EmailTo   string `env:"EMAIL_TO"`
	EmailFrom string `env:"EMAIL_FROM"`

	// StrictConfig turns a missing relay setting into a startup error.
	StrictConfig    bool          `env:"STRICT_CONFIG" envDefault:"false"`
	DebugEndpoints  bool          `env:"DEBUG_ENDPOINTS" envDefault:"true"`
	MetricsEnabled  bool          `env:"METRICS_ENABLED" envDefault:"true"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	SendGrid sendgrid.Config
	Log      logger.Config
}

// Load parses the process environment into a Config.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given variables instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return net.JoinHostPort("", c.Port)
}
