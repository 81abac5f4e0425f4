// internal/agents/financetracker/handler.go
package financetracker

import (
	"agent-demos/internal/common/logger"
	"agent-demos/internal/common/simulator"
	"agent-demos/internal/common/validation"
)

const (
	AgentID  = "finance-tracker"
	TaskType = "demo." + AgentID
)

// Handler turns a free-text expense list into a categorized spending summary.
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

func (h *Handler) Classify(input *Input, _ simulator.Rand) classification {
	expenses, unparsed := parseExpenses(input.ExpensesInput)
	return classification{Expenses: expenses, Unparsed: unparsed}
}

func (h *Handler) Compose(_ *Input, cls classification, _ simulator.Rand) *Output {
	categories, total := breakdown(cls.Expenses)

	h.logger.Debug("expenses categorized", map[string]interface{}{
		"expenses":   len(cls.Expenses),
		"unparsed":   len(cls.Unparsed),
		"categories": len(categories),
		"total":      total,
	})

	return &Output{
		TotalSpend:        total,
		Currency:          h.config.Currency,
		CategoryBreakdown: categories,
		Expenses:          cls.Expenses,
		UnparsedLines:     cls.Unparsed,
		TopCategory:       topCategory(categories),
		SavingsTip:        savingsTip(h.config, categories, total),
		Metadata:          simulator.NewMetadata(AgentID),
	}
}
