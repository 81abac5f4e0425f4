// internal/agents/shopsmart/handler.go
package shopsmart

import (
	"slices"

	"agent-demos/internal/common/logger"
	"agent-demos/internal/common/simulator"
	"agent-demos/internal/common/validation"
)

const (
	AgentID  = "shop-smart"
	TaskType = "demo." + AgentID
)

// Handler recommends a few catalog products for a shopper's interest.
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
	applyDefaults(input)
	return validation.Validate(GetInputSchema(), input)
}

func (h *Handler) Classify(input *Input, rng simulator.Rand) classification {
	terms := interestTerms(input.ProductInterest)
	candidates, matchType := filter(h.config.Catalog.Products, terms, input.AgeGroup, input.Gender)

	simulator.Shuffle(rng, candidates)
	n := h.config.MinResults + rng.IntN(h.config.MaxResults-h.config.MinResults+1)
	n = min(n, len(candidates))

	return classification{
		MatchType: matchType,
		Terms:     terms,
		Products:  slices.Clone(candidates[:n]),
	}
}

func (h *Handler) Compose(input *Input, cls classification, _ simulator.Rand) *Output {
	recs := make([]Recommendation, 0, len(cls.Products))
	for _, p := range cls.Products {
		recs = append(recs, Recommendation{
			ProductID:   p.ID,
			Name:        p.Name,
			Description: p.Description,
			Category:    p.Category,
			Price:       p.Price,
			Rating:      p.Rating,
			Reason:      reasonFor(cls.MatchType, p, input, cls.Terms),
		})
	}

	h.logger.Debug("products recommended", map[string]interface{}{
		"match_type": cls.MatchType,
		"terms":      cls.Terms,
		"count":      len(recs),
	})

	return &Output{
		MatchType:       cls.MatchType,
		Recommendations: recs,
		Summary:         summaryFor(cls.MatchType, len(recs), input.ProductInterest),
		Metadata:        simulator.NewMetadata(AgentID),
	}
}
