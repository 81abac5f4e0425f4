// internal/agents/contentcraft/handler.go
package contentcraft

import (
	"strings"

	"agent-demos/internal/common/logger"
	"agent-demos/internal/common/simulator"
	"agent-demos/internal/common/validation"
)

const (
	AgentID  = "content-craft"
	TaskType = "demo." + AgentID
)

// Handler drafts marketing copy from a prompt and content type.
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
	return classification{
		ContentType: input.ContentType,
		Topic:       topicOf(input.Prompt),
		Variant:     simulator.Chance(rng, h.config.VariantRate),
	}
}

func (h *Handler) Compose(_ *Input, cls classification, _ simulator.Rand) *Output {
	title, content, hashtags := compose(cls, h.config.MaxHashtags)

	h.logger.Debug("content drafted", map[string]interface{}{
		"contentType": cls.ContentType,
		"variant":     cls.Variant,
	})

	return &Output{
		ContentType: cls.ContentType,
		Title:       title,
		Content:     content,
		Hashtags:    hashtags,
		WordCount:   len(strings.Fields(content)),
		Metadata:    simulator.NewMetadata(AgentID),
	}
}
