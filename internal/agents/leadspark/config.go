// internal/agents/leadspark/config.go
package leadspark

import (
	"fmt"

	"agent-demos/internal/common/config"
)

// Config holds the scoring weights. Every matched signal category adds its
// weight once.
type Config struct {
	LinkedInScoreMin int `mapstructure:"linkedin_score_min"`
	LinkedInScoreMax int `mapstructure:"linkedin_score_max"` // exclusive
	BaseScoreMin     int `mapstructure:"base_score_min"`
	BaseScoreMax     int `mapstructure:"base_score_max"` // exclusive
	TechWeight       int `mapstructure:"tech_weight"`
	LocationWeight   int `mapstructure:"location_weight"`
	SeniorityWeight  int `mapstructure:"seniority_weight"`
	StageWeight      int `mapstructure:"stage_weight"`
}

func DefaultConfig() *Config {
	return &Config{
		LinkedInScoreMin: 70,
		LinkedInScoreMax: 85,
		BaseScoreMin:     30,
		BaseScoreMax:     50,
		TechWeight:       15,
		LocationWeight:   10,
		SeniorityWeight:  20,
		StageWeight:      10,
	}
}

func LoadConfig(settings map[string]interface{}) (*Config, error) {
	cfg := DefaultConfig()
	if err := config.DecodeSettings(settings, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", AgentID, err)
	}
	if cfg.LinkedInScoreMax <= cfg.LinkedInScoreMin || cfg.BaseScoreMax <= cfg.BaseScoreMin {
		return nil, fmt.Errorf("%s: score ranges must be non-empty", AgentID)
	}
	return cfg, nil
}
