// internal/agents/shopsmart/models.go
package shopsmart

import "agent-demos/internal/common/simulator"

type Input struct {
	ProductInterest string `json:"productInterest"`
	AgeGroup        string `json:"ageGroup,omitempty"`
	Gender          string `json:"gender,omitempty"`
}

type Output struct {
	MatchType       string             `json:"matchType"`
	Recommendations []Recommendation   `json:"recommendations"`
	Summary         string             `json:"summary"`
	Metadata        simulator.Metadata `json:"metadata"`
}

type Recommendation struct {
	ProductID   string  `json:"productId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	Reason      string  `json:"reason"`
}

// Age groups
const (
	AgeAny    = "any"
	AgeChild  = "child"
	AgeTeen   = "teen"
	AgeAdult  = "adult"
	AgeSenior = "senior"
)

// Genders. Catalog products use GenderUnisex instead of GenderAny.
const (
	GenderAny    = "any"
	GenderMale   = "male"
	GenderFemale = "female"
	GenderUnisex = "unisex"
)

var (
	ageGroups = []string{AgeAny, AgeChild, AgeTeen, AgeAdult, AgeSenior}
	genders   = []string{GenderAny, GenderMale, GenderFemale}
)

// Match types, from strictest to loosest.
const (
	MatchExact    = "exact"
	MatchInterest = "interest"
	MatchPopular  = "popular"
)

type classification struct {
	MatchType string
	Terms     []string
	Products  []Product
}
