// internal/agents/taskmaster/config.go
package taskmaster

import (
	"fmt"

	"agent-demos/internal/common/config"
)

type Config struct {
	// HouseholdMediumRate is the chance a chore is ranked Medium rather than Low.
	HouseholdMediumRate float64 `mapstructure:"household_medium_rate"`
	MaxTasks            int     `mapstructure:"max_tasks"`
}

func DefaultConfig() *Config {
	return &Config{
		HouseholdMediumRate: 0.4,
		MaxTasks:            50,
	}
}

func LoadConfig(settings map[string]interface{}) (*Config, error) {
	cfg := DefaultConfig()
	if err := config.DecodeSettings(settings, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", AgentID, err)
	}
	if cfg.HouseholdMediumRate < 0 || cfg.HouseholdMediumRate > 1 {
		return nil, fmt.Errorf("%s: household_medium_rate must be within [0,1]", AgentID)
	}
	if cfg.MaxTasks <= 0 {
		return nil, fmt.Errorf("%s: max_tasks must be positive", AgentID)
	}
	return cfg, nil
}
