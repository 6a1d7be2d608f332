package cli

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/hustle-tracker/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:              "0",
		LogLevel:          "error",
		OperatorWorkers:   1,
		OperatorQueueSize: 10,
		AdminUserIDs:      []string{"boss"},
		ShutdownTimeout:   time.Second,
	}
}

func TestServeCommand_Registered(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"serve"})
	require.NoError(t, err)
	assert.Equal(t, "serve", cmd.Name())
	assert.NotNil(t, cmd.Flags().Lookup("port"))
}

func TestApplyFlags(t *testing.T) {
	cfg := testConfig()
	require.NoError(t, serveCmd.Flags().Set("port", "8088"))
	t.Cleanup(func() { _ = serveCmd.Flags().Set("port", "") })

	applyFlags(serveCmd, cfg)

	assert.Equal(t, "8088", cfg.Port)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestBuild_SeedsAdmins(t *testing.T) {
	a, err := build(testConfig())
	require.NoError(t, err)
	assert.Equal(t, "0", a.rest.Port)

	a.operator.Start()
	t.Cleanup(a.operator.Stop)
	handler := a.rest.Handler()

	// An admin gets past the role check to body validation; anyone else is forbidden.
	for userID, want := range map[string]int{"boss": http.StatusBadRequest, "someone": http.StatusForbidden} {
		req := httptest.NewRequest(http.MethodPatch, "/api/transactions/missing/status", strings.NewReader(`{"status":"NOPE"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("user-id", userID)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, want, rec.Code, userID)
	}
}

func TestBuild_BadUsersFile(t *testing.T) {
	cfg := testConfig()
	cfg.UsersFile = "/does/not/exist.toml"

	_, err := build(cfg)
	assert.Error(t, err)
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	a, err := build(testConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.run(ctx) }()

	require.Eventually(t, a.operator.Running, time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return")
	}
	assert.False(t, a.operator.Running())
}
