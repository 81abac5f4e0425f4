// internal/agents/leadspark/rules.go
package leadspark

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var linkedInPattern = regexp.MustCompile(`(?i)linkedin\.com/in/([^/?#\s]+)`)

type signal struct {
	name    string
	pattern *regexp.Regexp
	weight  func(*Config) int
}

var signals = []signal{
	{
		name:    "AI / tech focus",
		pattern: regexp.MustCompile(`(?i)\b(ai|ml|machine learning|artificial intelligence|saas|software|tech|cloud|data)\b`),
		weight:  func(c *Config) int { return c.TechWeight },
	},
	{
		name:    "target location",
		pattern: regexp.MustCompile(`(?i)\b(san francisco|new york|london|berlin|bangalore|bengaluru|mumbai|india|usa|singapore|austin|remote)\b`),
		weight:  func(c *Config) int { return c.LocationWeight },
	},
	{
		name:    "decision-maker seniority",
		pattern: regexp.MustCompile(`(?i)\b(ceo|cto|cfo|coo|founder|co-founder|vp|vice president|director|head of|chief)\b`),
		weight:  func(c *Config) int { return c.SeniorityWeight },
	},
	{
		name:    "growth-stage company",
		pattern: regexp.MustCompile(`(?i)\b(startup|start-up|seed|series [a-d]|funded|scale-?up)\b`),
		weight:  func(c *Config) int { return c.StageWeight },
	},
}

// nameFromProfile turns a LinkedIn path segment, raw or percent-encoded, into a
// display name.
func nameFromProfile(segment string) string {
	if unescaped, err := url.PathUnescape(segment); err == nil {
		segment = unescaped
	}
	segment = strings.TrimRight(segment, ".,;:!?)\"'")
	words := strings.Fields(strings.NewReplacer("-", " ", "_", " ").Replace(segment))
	if len(words) == 0 {
		return "LinkedIn Member"
	}
	// cases.Caser is stateful; one per call.
	return cases.Title(language.English).String(strings.Join(words, " "))
}

func companyFromName(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "Independent Consulting"
	}
	return parts[len(parts)-1] + " Solutions"
}

func clampScore(score int) int {
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return score
	}
}

func ratingFor(score int) string {
	switch {
	case score > 85:
		return RatingHot
	case score > 65:
		return RatingWarm
	case score > 45:
		return RatingLukewarm
	default:
		return RatingCold
	}
}

type profile struct {
	name            string
	title           string
	company         string
	info            CompanyInfo
	recommendations []string
}

var profiles = map[string]profile{
	RatingHot: {
		name:    "Priya Raman",
		title:   "VP of Engineering",
		company: "NeuralForge AI",
		info:    CompanyInfo{Industry: "Artificial Intelligence", Size: "51-200 employees", Stage: "Series B", Location: "Bengaluru, India"},
		recommendations: []string{
			"Reach out within 24 hours with a tailored automation case study",
			"Offer a live demo focused on engineering productivity",
			"Loop in an account executive for a fast-track proposal",
		},
	},
	RatingWarm: {
		name:    "Daniel Brooks",
		title:   "Head of Product",
		company: "CloudNest Labs",
		info:    CompanyInfo{Industry: "SaaS", Size: "201-500 employees", Stage: "Series A", Location: "Austin, USA"},
		recommendations: []string{
			"Send a personalised intro referencing their product roadmap",
			"Share a short ROI calculator for workflow automation",
		},
	},
	RatingLukewarm: {
		name:    "Maria Gonzalez",
		title:   "Operations Manager",
		company: "BrightPath Logistics",
		info:    CompanyInfo{Industry: "Logistics", Size: "501-1000 employees", Stage: "Established", Location: "Madrid, Spain"},
		recommendations: []string{
			"Add to a nurture sequence with monthly automation tips",
			"Revisit in one quarter to check for new initiatives",
		},
	},
	RatingCold: {
		name:    "Tom Becker",
		title:   "Office Coordinator",
		company: "Becker & Sons Hardware",
		info:    CompanyInfo{Industry: "Retail", Size: "11-50 employees", Stage: "Bootstrapped", Location: "Leipzig, Germany"},
		recommendations: []string{
			"Keep in the general newsletter audience",
			"Do not prioritise for outbound this cycle",
		},
	},
}
