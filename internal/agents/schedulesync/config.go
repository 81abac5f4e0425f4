// internal/agents/schedulesync/config.go
package schedulesync

import (
	"fmt"

	"agent-demos/internal/common/config"
)

type Config struct {
	TimeSlots       []string `mapstructure:"time_slots"`
	DurationMinutes int      `mapstructure:"duration_minutes"`
}

func DefaultConfig() *Config {
	return &Config{
		TimeSlots:       []string{"10:00 AM", "11:30 AM", "2:00 PM", "4:00 PM"},
		DurationMinutes: 30,
	}
}

func LoadConfig(settings map[string]interface{}) (*Config, error) {
	cfg := DefaultConfig()
	if err := config.DecodeSettings(settings, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", AgentID, err)
	}
	if len(cfg.TimeSlots) == 0 {
		return nil, fmt.Errorf("%s: time_slots must not be empty", AgentID)
	}
	if cfg.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%s: duration_minutes must be positive", AgentID)
	}
	return cfg, nil
}
