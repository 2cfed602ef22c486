package app

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/config"
	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/workflow"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            0,
			ShutdownTimeout: time.Second,
		},
		Log:  config.LogConfig{Level: "info", Format: "json"},
		CORS: config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,OPTIONS", AllowedHeaders: "Content-Type"},
		Workflow: config.WorkflowConfig{
			IDStart: 5000,
			SLA:     workflow.DefaultSLAPolicy(),
		},
		Dashboard: config.DashboardConfig{
			RequestWindowDays:    30,
			FollowUpAfter:        72 * time.Hour,
			RecentPaymentsWindow: 168 * time.Hour,
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewHandler_Routes(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(NewHandler(testConfig(), discardLogger()))
	defer srv.Close()

	body := `{"customer":"Alice","vehicle":"Camry","issue":"Engine","description":"Stalls","amount":"100"}`
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/claims", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("X-Actor-Role", "intake")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"id":"CLAIM-5001"`)
}

func TestNewHandler_Live(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(NewHandler(testConfig(), discardLogger()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/live")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServe_StopsOnCancel(t *testing.T) {
	t.Parallel()

	// Reserve a free port, then release it for the server.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	cfg := testConfig()
	cfg.Server.Port = port

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, cfg, discardLogger()) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + cfg.Server.Addr() + "/live")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
