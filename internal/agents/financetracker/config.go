// internal/agents/financetracker/config.go
package financetracker

import (
	"fmt"

	"agent-demos/internal/common/config"
)

type Config struct {
	Currency               string  `mapstructure:"currency"`
	FoodShareThreshold     float64 `mapstructure:"food_share_threshold"`
	ShoppingShareThreshold float64 `mapstructure:"shopping_share_threshold"`
}

func DefaultConfig() *Config {
	return &Config{
		Currency:               "₹",
		FoodShareThreshold:     0.4,
		ShoppingShareThreshold: 0.3,
	}
}

func LoadConfig(settings map[string]interface{}) (*Config, error) {
	cfg := DefaultConfig()
	if err := config.DecodeSettings(settings, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", AgentID, err)
	}
	if cfg.Currency == "" {
		return nil, fmt.Errorf("%s: currency is required", AgentID)
	}
	for name, v := range map[string]float64{
		"food_share_threshold":     cfg.FoodShareThreshold,
		"shopping_share_threshold": cfg.ShoppingShareThreshold,
	} {
		if v < 0 || v > 1 {
			return nil, fmt.Errorf("%s: %s must be within [0,1]", AgentID, name)
		}
	}
	return cfg, nil
}
