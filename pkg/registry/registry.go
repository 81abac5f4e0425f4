// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg Registry
	err = json.Unmarshal(data, &reg)
	return &reg, err
}

// Save writes the registry as indented JSON, stamping LastUpdated.
func (r *Registry) Save(path string) error {
	r.LastUpdated = time.Now().UTC().Format(time.RFC3339)

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal registry: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create registry dir: %w", err)
		}
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func (r *Registry) Find(id string) (*Agent, bool) {
	for i := range r.Agents {
		if r.Agents[i].ID == id {
			return &r.Agents[i], true
		}
	}
	return nil, false
}

// IDs lists agent IDs in registry order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.Agents))
	for _, a := range r.Agents {
		ids = append(ids, a.ID)
	}
	return ids
}
