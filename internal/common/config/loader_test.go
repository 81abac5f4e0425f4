package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "agent-demos", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 700, cfg.Simulator.DelayMs)
	assert.Equal(t, "demo:runs", cfg.Redis.Key)
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.Camunda.Enabled)
	assert.Equal(t, 10, cfg.Camunda.MaxJobsActive)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.NotNil(t, cfg.Agents)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
simulator:
  delay_ms: 0
agents:
  inbox-zero:
    enabled: true
    settings:
      omit_empty_action_items: true
  shop-smart:
    enabled: false
  lead-spark:
    enabled: true
    delay_ms: 50
logging:
  level: debug
  format: console
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 0, cfg.Simulator.DelayMs, "explicit zero delay must survive defaults")
	assert.Equal(t, "console", cfg.Logging.Format)

	assert.True(t, IsAgentEnabled(cfg, "inbox-zero"))
	assert.False(t, IsAgentEnabled(cfg, "shop-smart"))
	assert.True(t, IsAgentEnabled(cfg, "task-master"), "unlisted agents are enabled")
	assert.Equal(t, true, cfg.Agents["inbox-zero"].Settings["omit_empty_action_items"])

	assert.Equal(t, time.Duration(0), AgentDelay(cfg, "inbox-zero"))
	assert.Equal(t, 50*time.Millisecond, AgentDelay(cfg, "lead-spark"))
}

func TestLoadFromFile_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("DEMO_REDIS_PASSWORD", "s3cret")

	path := writeConfig(t, `
redis:
  enabled: true
  address: cache:6379
  password: ${DEMO_REDIS_PASSWORD}
camunda:
  broker_address: ${DEMO_UNSET_ZEEBE_ADDRESS}
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "cache:6379", cfg.Redis.Address)
	assert.Equal(t, "s3cret", cfg.Redis.Password)
	assert.Equal(t, "localhost:26500", cfg.Camunda.BrokerAddress)
}

func TestLoadFromFile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "negative delay", body: "simulator:\n  delay_ms: -5\n"},
		{name: "port out of range", body: "server:\n  port: 70000\n"},
		{name: "unknown log format", body: "logging:\n  format: xml\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFile(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
		})
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestAgentDelay_NegativeOverrideDisables(t *testing.T) {
	off := -1
	cfg := Default()
	cfg.Agents["task-master"] = AgentConfig{Enabled: true, DelayMs: &off}

	assert.Equal(t, time.Duration(0), AgentDelay(cfg, "task-master"))
	assert.Equal(t, 700*time.Millisecond, AgentDelay(cfg, "finance-tracker"))
}
