// internal/agents/shopsmart/config.go
package shopsmart

import (
	"fmt"
	"os"

	"agent-demos/internal/common/config"
)

type Config struct {
	MinResults int `mapstructure:"min_results"`
	MaxResults int `mapstructure:"max_results"`
	// CatalogFile replaces the built-in catalog when set.
	CatalogFile string `mapstructure:"catalog_file"`

	Catalog *Catalog `mapstructure:"-"`
}

func DefaultConfig() *Config {
	return &Config{
		MinResults: 2,
		MaxResults: 3,
		Catalog:    DefaultCatalog(),
	}
}

func LoadConfig(settings map[string]interface{}) (*Config, error) {
	cfg := DefaultConfig()
	if err := config.DecodeSettings(settings, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", AgentID, err)
	}
	if cfg.MinResults < 1 || cfg.MaxResults < cfg.MinResults {
		return nil, fmt.Errorf("%s: need 1 <= min_results <= max_results", AgentID)
	}
	if cfg.CatalogFile != "" {
		data, err := os.ReadFile(cfg.CatalogFile)
		if err != nil {
			return nil, fmt.Errorf("%s: read catalog: %w", AgentID, err)
		}
		catalog, err := LoadCatalog(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", AgentID, err)
		}
		cfg.Catalog = catalog
	}
	return cfg, nil
}
