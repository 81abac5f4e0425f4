// internal/agents/contentcraft/config.go
package contentcraft

import (
	"fmt"

	"agent-demos/internal/common/config"
)

type Config struct {
	// VariantRate is the chance of appending the extra paragraph, hashtag set or sentence.
	VariantRate float64 `mapstructure:"variant_rate"`
	MaxHashtags int     `mapstructure:"max_hashtags"`
}

func DefaultConfig() *Config {
	return &Config{
		VariantRate: 0.5,
		MaxHashtags: 3,
	}
}

func LoadConfig(settings map[string]interface{}) (*Config, error) {
	cfg := DefaultConfig()
	if err := config.DecodeSettings(settings, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", AgentID, err)
	}
	if cfg.VariantRate < 0 || cfg.VariantRate > 1 {
		return nil, fmt.Errorf("%s: variant_rate must be within [0,1]", AgentID)
	}
	if cfg.MaxHashtags < 0 {
		return nil, fmt.Errorf("%s: max_hashtags must not be negative", AgentID)
	}
	return cfg, nil
}
