// internal/common/config/config.go
package config

import (
	"fmt"
	"time"
)

// Config is the main application configuration struct.
type Config struct {
	App       AppConfig              `mapstructure:"app"`
	Server    ServerConfig           `mapstructure:"server"`
	Simulator SimulatorConfig        `mapstructure:"simulator"`
	Agents    map[string]AgentConfig `mapstructure:"agents"`
	Redis     RedisConfig            `mapstructure:"redis"`
	Camunda   CamundaConfig          `mapstructure:"camunda"`
	Logging   LoggingConfig          `mapstructure:"logging"`
	Metrics   MetricsConfig          `mapstructure:"metrics"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ReadTimeout     int    `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int    `mapstructure:"write_timeout"`    // milliseconds
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
	MaxBodyBytes    int64  `mapstructure:"max_body_bytes"`
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type SimulatorConfig struct {
	DelayMs int    `mapstructure:"delay_ms"`
	Seed    uint64 `mapstructure:"seed"` // 0 means runtime-seeded
}

// AgentConfig holds the settings applicable to every demo agent.
type AgentConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// DelayMs overrides simulator.delay_ms when set; negative disables the delay.
	DelayMs  *int                   `mapstructure:"delay_ms"`
	Settings map[string]interface{} `mapstructure:"settings"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Key      string `mapstructure:"key"`
}

type CamundaConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	BrokerAddress  string `mapstructure:"broker_address"`
	MaxJobsActive  int    `mapstructure:"max_jobs_active"`
	Timeout        int    `mapstructure:"timeout"`         // milliseconds
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// GetDuration converts milliseconds from config to time.Duration
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}

// GetAgentConfig retrieves agent-specific configuration with fallback to defaults.
func GetAgentConfig(cfg *Config, agentID string) AgentConfig {
	if agent, exists := cfg.Agents[agentID]; exists {
		return agent
	}
	return AgentConfig{Enabled: true}
}

// IsAgentEnabled checks if a specific agent is enabled. Unlisted agents are on.
func IsAgentEnabled(cfg *Config, agentID string) bool {
	return GetAgentConfig(cfg, agentID).Enabled
}

// AgentDelay resolves the thinking time for one agent.
func AgentDelay(cfg *Config, agentID string) time.Duration {
	agent := GetAgentConfig(cfg, agentID)
	if agent.DelayMs != nil {
		if *agent.DelayMs < 0 {
			return 0
		}
		return GetDuration(*agent.DelayMs)
	}
	return GetDuration(cfg.Simulator.DelayMs)
}
