// internal/agents/inboxzero/handler.go
package inboxzero

import (
	"agent-demos/internal/common/logger"
	"agent-demos/internal/common/simulator"
	"agent-demos/internal/common/validation"
)

const (
	AgentID  = "inbox-zero"
	TaskType = "demo." + AgentID
)

// Handler triages a single email into a category with follow-up actions.
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

// NewSimulator wires the handler into the shared demo pipeline.
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
	return classify(input.EmailContent, func() bool {
		return simulator.Chance(rng, h.config.SpamPromotionRate)
	})
}

func (h *Handler) Compose(input *Input, cls classification, _ simulator.Rand) *Output {
	h.logger.Debug("email triaged", map[string]interface{}{
		"category": cls.Category,
		"rule":     cls.Rule,
	})

	return &Output{
		Summary:              summarize(input.EmailContent),
		Category:             cls.Category,
		ActionItems:          actionItemsFor(cls),
		SuggestedReply:       suggestedReplies[cls.Rule],
		Metadata:             simulator.NewMetadata(AgentID),
		omitEmptyActionItems: h.config.OmitEmptyActionItems,
	}
}
