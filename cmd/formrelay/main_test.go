package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrelay/internal"
	"github.com/dmitrymomot/formrelay/internal/config"
	"github.com/dmitrymomot/formrelay/pkg/logger"
	"github.com/dmitrymomot/formrelay/pkg/mailer/sendgrid"
)

// sendGridStub is a SendGrid API stand-in recording decoded v3 payloads.
type sendGridStub struct {
	mu       sync.Mutex
	payloads []map[string]any
	status   int
	body     string
}

func (s *sendGridStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	var payload map[string]any
	_ = json.Unmarshal(raw, &payload)

	s.mu.Lock()
	s.payloads = append(s.payloads, payload)
	s.mu.Unlock()

	w.WriteHeader(s.status)
	_, _ = w.Write([]byte(s.body))
}

func (s *sendGridStub) received() []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]map[string]any(nil), s.payloads...)
}

func startStub(t *testing.T, status int, body string) (*sendGridStub, string) {
	t.Helper()
	stub := &sendGridStub{status: status, body: body}
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)
	return stub, srv.URL
}

func testConfig(t *testing.T, sendGridURL string, vars map[string]string) config.Config {
	t.Helper()
	env := map[string]string{
		"SENDGRID_API_KEY": "SG.test",
		"SENDGRID_HOST":    sendGridURL,
		"EMAIL_TO":         "owner@example.com",
		"EMAIL_FROM":       "relay@example.com",
	}
	for k, v := range vars {
		env[k] = v
	}
	cfg, err := config.LoadFrom(env)
	require.NoError(t, err)
	return cfg
}

func startApp(t *testing.T, cfg config.Config) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(newApp(cfg, logger.NewNope(), sendgrid.New(cfg.SendGrid)))
	t.Cleanup(srv.Close)
	return srv
}

func TestRelay_EndToEnd(t *testing.T) {
	t.Parallel()

	stub, url := startStub(t, http.StatusAccepted, "")
	srv := startApp(t, testConfig(t, url, nil))

	resp, err := http.Post(srv.URL+"/send", "application/json",
		strings.NewReader(`{"name":"Ann","email":"ann@x.io","message":"Hello there"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"ok":true,"message":"Message sent"}`, string(body))
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	payloads := stub.received()
	require.Len(t, payloads, 1)
	p := payloads[0]

	assert.Equal(t, "relay@example.com", p["from"].(map[string]any)["email"])
	assert.Equal(t, "Website message from Ann", p["subject"])

	pers := p["personalizations"].([]any)
	require.Len(t, pers, 1)
	to := pers[0].(map[string]any)["to"].([]any)
	require.Len(t, to, 1)
	assert.Equal(t, "owner@example.com", to[0].(map[string]any)["email"])

	content := p["content"].([]any)
	require.Len(t, content, 1)
	assert.Equal(t, "text/plain", content[0].(map[string]any)["type"])
	assert.Equal(t, "From: ann@x.io\n\nHello there", content[0].(map[string]any)["value"])
}

func TestRelay_ProviderRejects(t *testing.T) {
	t.Parallel()

	_, url := startStub(t, http.StatusForbidden,
		`{"errors":[{"message":"The from address does not match a verified Sender Identity.","field":"from"}]}`)
	srv := startApp(t, testConfig(t, url, nil))

	resp, err := http.Post(srv.URL+"/send", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, false, out["ok"])
	assert.Equal(t, "sendgrid: 403 Forbidden: The from address does not match a verified Sender Identity.", out["error"])

	resp, err = http.Get(srv.URL + "/test-sendgrid")
	require.NoError(t, err)
	defer resp.Body.Close()

	text, _ := io.ReadAll(resp.Body)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.True(t, strings.HasPrefix(string(text), "❌ Test failed: sendgrid: 403 Forbidden"))
}

func TestRelay_OperatorEndpoints(t *testing.T) {
	t.Parallel()

	_, url := startStub(t, http.StatusAccepted, "")
	srv := startApp(t, testConfig(t, url, map[string]string{"EMAIL_FROM": ""}))

	get := func(path string) (int, string) {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		b, _ := io.ReadAll(resp.Body)
		return resp.StatusCode, string(b)
	}

	code, body := get("/env-debug")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"SENDGRID_API_KEY_set":true,"EMAIL_TO":true,"EMAIL_FROM":false}`, body)

	code, _ = get("/health/live")
	assert.Equal(t, http.StatusOK, code)

	code, _ = get("/health/ready")
	assert.Equal(t, http.StatusServiceUnavailable, code)

	// Missing sender: rejected locally, nothing reaches the provider.
	code, body = get("/test-sendgrid")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Contains(t, body, "❌ Test failed: ")

	code, body = get("/metrics")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `relay_messages_total{endpoint="test-sendgrid",outcome="failure"} 1`)
}

func TestRelay_FeatureToggles(t *testing.T) {
	t.Parallel()

	_, url := startStub(t, http.StatusAccepted, "")
	srv := startApp(t, testConfig(t, url, map[string]string{
		"DEBUG_ENDPOINTS": "false",
		"METRICS_ENABLED": "false",
	}))

	for _, path := range []string{"/env-debug", "/test-sendgrid", "/metrics"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
	}
}

func TestRun_StrictConfig(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, "http://127.0.0.1:1", map[string]string{
		"STRICT_CONFIG":    "true",
		"SENDGRID_API_KEY": "",
	})

	var out bytes.Buffer
	err := run(context.Background(), cfg, &out)
	require.ErrorIs(t, err, config.ErrMissingAPIKey)
	assert.Contains(t, out.String(), `"msg":"missing required setting"`)
}

func TestRun_LenientStartAndShutdown(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, "http://127.0.0.1:1", map[string]string{
		"PORT":             "0",
		"EMAIL_TO":         "",
		"SHUTDOWN_TIMEOUT": "5s",
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addrCh := make(chan net.Addr, 1)
	done := make(chan error, 1)
	var out safeBuffer
	go func() {
		done <- run(ctx, cfg, &out, internal.OnListen(func(a net.Addr) { addrCh <- a }))
	}()

	var addr net.Addr
	select {
	case addr = <-addrCh:
	case <-time.After(5 * time.Second):
		t.Fatal("relay did not start")
	}

	resp, err := http.Get("http://" + addr.String() + "/health/live")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("relay did not shut down")
	}

	assert.Contains(t, out.String(), `"key":"EMAIL_TO","set":false`)
	assert.Contains(t, out.String(), `"msg":"shutdown completed"`)
}

// safeBuffer is a bytes.Buffer guarded for concurrent writers.
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
