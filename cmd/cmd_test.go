package cmd

import (
	"bytes"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiaot623/wallboard/internal/config"
	transporthttp "github.com/xiaot623/wallboard/internal/transport/http"
	"github.com/xiaot623/wallboard/tests/helpers"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfg := &config.Config{CORSAllowOrigins: []string{"*"}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(transporthttp.NewServer(helpers.NewSeededRegistry(t), cfg, logger))
	t.Cleanup(srv.Close)

	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--server", srv.URL, "--no-color"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestAgentsCommand(t *testing.T) {
	out, err := runCLI(t, "agents")
	require.NoError(t, err)
	assert.Contains(t, out, "John Doe")
	assert.Contains(t, out, "Wrap Up")
	assert.Contains(t, out, "3 agents")
}

func TestStatsCommand(t *testing.T) {
	out, err := runCLI(t, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "33%")
	assert.Contains(t, out, "Total agents: 3")
}

func TestLoginCommand(t *testing.T) {
	out, err := runCLI(t, "login", "A099", "New Guy")
	require.NoError(t, err)
	assert.Contains(t, out, "Agent A099 logged in successfully")
	assert.Contains(t, out, "Available")
}

func TestSetStatusCommand(t *testing.T) {
	out, err := runCLI(t, "set-status", "A001", "Not Ready")
	require.NoError(t, err)
	assert.Contains(t, out, "from Available to Not Ready")

	_, err = runCLI(t, "set-status", "A001", "Bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid status")
}

func TestLogoutCommandUnknownAgent(t *testing.T) {
	_, err := runCLI(t, "logout", "NOPE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Agent not found")
}

func TestCommandArgs(t *testing.T) {
	_, err := runCLI(t, "login", "A099")
	assert.Error(t, err)
}
