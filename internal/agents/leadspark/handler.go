// internal/agents/leadspark/handler.go
package leadspark

import (
	"agent-demos/internal/common/logger"
	"agent-demos/internal/common/simulator"
	"agent-demos/internal/common/validation"
)

const (
	AgentID  = "lead-spark"
	TaskType = "demo." + AgentID
)

// Handler scores a lead query and attaches a matching company profile.
type Handler struct {
	config *Config
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		logger: logger.ForAgent(log, AgentID),
	}
}

func NewSimulator(config *Config, opts simulator.Options) *simulator.Simulator[Input, classification, Output] {
	if opts.Logger == nil {
		opts.Logger = logger.NewNoOpLogger()
	}
	return simulator.New[Input, classification, Output](AgentID, NewHandler(config, opts.Logger), opts)
}

func (h *Handler) Validate(input *Input) error {
	return validation.Validate(GetInputSchema(), input)
}

func (h *Handler) Classify(input *Input, rng simulator.Rand) classification {
	if m := linkedInPattern.FindStringSubmatch(input.LeadQuery); m != nil {
		name := nameFromProfile(m[1])
		score := h.config.LinkedInScoreMin + rng.IntN(h.config.LinkedInScoreMax-h.config.LinkedInScoreMin)
		score = clampScore(score)
		return classification{
			Score:   score,
			Rating:  ratingFor(score),
			Source:  SourceLinkedIn,
			Name:    name,
			Company: companyFromName(name),
			Signals: []string{"LinkedIn profile"},
		}
	}

	score := h.config.BaseScoreMin + rng.IntN(h.config.BaseScoreMax-h.config.BaseScoreMin)
	matched := make([]string, 0, len(signals))
	for _, s := range signals {
		if s.pattern.MatchString(input.LeadQuery) {
			score += s.weight(h.config)
			matched = append(matched, s.name)
		}
	}
	score = clampScore(score)

	return classification{
		Score:   score,
		Rating:  ratingFor(score),
		Source:  SourceSearch,
		Signals: matched,
	}
}

func (h *Handler) Compose(_ *Input, cls classification, _ simulator.Rand) *Output {
	p := profiles[cls.Rating]

	name, company := p.name, p.company
	if cls.Source == SourceLinkedIn {
		name, company = cls.Name, cls.Company
	}

	h.logger.Debug("lead scored", map[string]interface{}{
		"score":   cls.Score,
		"rating":  cls.Rating,
		"source":  cls.Source,
		"signals": cls.Signals,
	})

	return &Output{
		LeadName:        name,
		JobTitle:        p.title,
		Company:         company,
		LeadScore:       cls.Score,
		Rating:          cls.Rating,
		Source:          cls.Source,
		CompanyInfo:     p.info,
		MatchedSignals:  append([]string{}, cls.Signals...),
		Recommendations: append([]string{}, p.recommendations...),
		Metadata:        simulator.NewMetadata(AgentID),
	}
}
