// internal/agents/shopsmart/catalog.go
package shopsmart

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

type Product struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Category    string   `yaml:"category" json:"category"`
	Price       float64  `yaml:"price" json:"price"`
	Rating      float64  `yaml:"rating" json:"rating"`
	Gender      string   `yaml:"gender" json:"gender"`
	AgeGroups   []string `yaml:"ageGroups" json:"ageGroups"`
	Tags        []string `yaml:"tags" json:"tags"`
}

type Catalog struct {
	Products []Product `yaml:"products"`
}

// LoadCatalog parses a YAML product list. Passing nil loads the built-in catalog.
func LoadCatalog(data []byte) (*Catalog, error) {
	if data == nil {
		data = catalogYAML
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(c.Products) < 2 {
		return nil, fmt.Errorf("catalog must contain at least 2 products, got %d", len(c.Products))
	}
	for i, p := range c.Products {
		if p.ID == "" || p.Name == "" {
			return nil, fmt.Errorf("product %d: id and name are required", i)
		}
		switch p.Gender {
		case GenderMale, GenderFemale, GenderUnisex:
		default:
			return nil, fmt.Errorf("product %s: unknown gender %q", p.ID, p.Gender)
		}
	}
	return &c, nil
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() *Catalog {
	c, err := LoadCatalog(nil)
	if err != nil {
		panic(err)
	}
	return c
}
