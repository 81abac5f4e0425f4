// internal/agents/leadspark/models.go
package leadspark

import "agent-demos/internal/common/simulator"

type Input struct {
	LeadQuery string `json:"leadQuery"`
}

type Output struct {
	LeadName        string             `json:"leadName"`
	JobTitle        string             `json:"jobTitle"`
	Company         string             `json:"company"`
	LeadScore       int                `json:"leadScore"`
	Rating          string             `json:"rating"`
	Source          string             `json:"source"`
	CompanyInfo     CompanyInfo        `json:"companyInfo"`
	MatchedSignals  []string           `json:"matchedSignals"`
	Recommendations []string           `json:"recommendations"`
	Metadata        simulator.Metadata `json:"metadata"`
}

type CompanyInfo struct {
	Industry string `json:"industry"`
	Size     string `json:"size"`
	Stage    string `json:"stage"`
	Location string `json:"location"`
}

// Ratings, by score band.
const (
	RatingHot      = "Hot"
	RatingWarm     = "Warm"
	RatingLukewarm = "Lukewarm"
	RatingCold     = "Cold"
)

const (
	SourceLinkedIn = "linkedin"
	SourceSearch   = "search"
)

type classification struct {
	Score   int
	Rating  string
	Source  string
	Name    string
	Company string
	Signals []string
}
