// internal/agents/inboxzero/config.go
package inboxzero

import (
	"fmt"

	"agent-demos/internal/common/config"
)

type Config struct {
	// OmitEmptyActionItems drops actionItems from the JSON body instead of
	// sending [] when no action applies.
	OmitEmptyActionItems bool    `mapstructure:"omit_empty_action_items"`
	SpamPromotionRate    float64 `mapstructure:"spam_promotion_rate"`
}

func DefaultConfig() *Config {
	return &Config{
		OmitEmptyActionItems: false,
		SpamPromotionRate:    0.3,
	}
}

func LoadConfig(settings map[string]interface{}) (*Config, error) {
	cfg := DefaultConfig()
	if err := config.DecodeSettings(settings, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", AgentID, err)
	}
	if cfg.SpamPromotionRate < 0 || cfg.SpamPromotionRate > 1 {
		return nil, fmt.Errorf("%s: spam_promotion_rate must be within [0,1]", AgentID)
	}
	return cfg, nil
}
