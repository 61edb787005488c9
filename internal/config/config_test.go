package config_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrelay/internal/config"
	"github.com/dmitrymomot/formrelay/pkg/logger"
	"github.com/dmitrymomot/formrelay/pkg/mailer/sendgrid"
)

func TestLoadFrom_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, sendgrid.DefaultHost, cfg.SendGrid.Host)
	assert.Empty(t, cfg.SendGrid.APIKey)
	assert.False(t, cfg.StrictConfig)
	assert.True(t, cfg.DebugEndpoints)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.Log.Level)
	assert.Equal(t, "production", cfg.Log.Sentry.Environment)
}

func TestLoadFrom_Values(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFrom(map[string]string{
		"PORT":             "8080",
		"SENDGRID_API_KEY": "SG.key",
		"SENDGRID_HOST":    "http://127.0.0.1:9999",
		"EMAIL_TO":         "owner@example.com",
		"EMAIL_FROM":       "relay@example.com",
		"STRICT_CONFIG":    "true",
		"DEBUG_ENDPOINTS":  "false",
		"METRICS_ENABLED":  "false",
		"SHUTDOWN_TIMEOUT": "5s",
		"LOG_LEVEL":        "debug",
	})
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "SG.key", cfg.SendGrid.APIKey)
	assert.Equal(t, "http://127.0.0.1:9999", cfg.SendGrid.Host)
	assert.Equal(t, "owner@example.com", cfg.EmailTo)
	assert.Equal(t, "relay@example.com", cfg.EmailFrom)
	assert.True(t, cfg.StrictConfig)
	assert.False(t, cfg.DebugEndpoints)
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
}

func TestLoadFrom_EmptyPortFallsBack(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFrom(map[string]string{"PORT": ""})
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
}

func TestLoadFrom_Invalid(t *testing.T) {
	t.Parallel()

	_, err := config.LoadFrom(map[string]string{"SHUTDOWN_TIMEOUT": "soon"})
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad_ProcessEnvironment(t *testing.T) {
	t.Setenv("EMAIL_TO", "env@example.com")
	t.Setenv("PORT", "4321")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "env@example.com", cfg.EmailTo)
	assert.Equal(t, ":4321", cfg.Addr())
}

func TestPresence(t *testing.T) {
	t.Parallel()

	cfg := config.Config{EmailTo: "owner@example.com"}
	cfg.SendGrid.APIKey = "SG.secret"

	assert.Equal(t, config.Presence{SendGridAPIKey: true, EmailTo: true}, cfg.Presence())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("all set", func(t *testing.T) {
		t.Parallel()
		cfg := config.Config{EmailTo: "a@example.com", EmailFrom: "b@example.com"}
		cfg.SendGrid.APIKey = "SG.x"
		require.NoError(t, cfg.Validate())
	})

	t.Run("reports every missing setting", func(t *testing.T) {
		t.Parallel()
		err := config.Config{EmailTo: "a@example.com"}.Validate()
		require.ErrorIs(t, err, config.ErrMissingAPIKey)
		require.ErrorIs(t, err, config.ErrMissingFrom)
		require.NotErrorIs(t, err, config.ErrMissingEmailTo)
	})
}

func TestLogPresence(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewJSON(&buf, slog.LevelInfo)

	cfg := config.Config{EmailFrom: "relay@example.com"}
	cfg.SendGrid.APIKey = "SG.topsecret"
	cfg.LogPresence(context.Background(), log)

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)

	assert.Contains(t, lines[0], `"key":"SENDGRID_API_KEY","set":true`)
	assert.Contains(t, lines[1], `"key":"EMAIL_TO","set":false`)
	assert.Contains(t, lines[2], `"key":"EMAIL_FROM","set":true`)
	assert.Contains(t, lines[3], `"level":"ERROR"`)
	assert.Contains(t, lines[3], `"key":"EMAIL_TO"`)

	assert.NotContains(t, out, "SG.topsecret")
	assert.NotContains(t, out, "relay@example.com")
}
