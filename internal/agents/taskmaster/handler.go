// internal/agents/taskmaster/handler.go
package taskmaster

import (
	"cmp"
	"fmt"
	"slices"

	"agent-demos/internal/common/logger"
	"agent-demos/internal/common/simulator"
	"agent-demos/internal/common/validation"
)

const (
	AgentID  = "task-master"
	TaskType = "demo." + AgentID
)

// Handler ranks a free-text task list by urgency.
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
	lines, skipped := splitTasks(input.Tasks, h.config.MaxTasks)
	tasks := make([]PrioritizedTask, 0, len(lines))
	for _, line := range lines {
		tasks = append(tasks, prioritize(line, rng, h.config.HouseholdMediumRate))
	}
	return classification{Tasks: tasks, Skipped: skipped}
}

func (h *Handler) Compose(_ *Input, cls classification, _ simulator.Rand) *Output {
	tasks := slices.Clone(cls.Tasks)
	// equal priorities keep input order
	slices.SortStableFunc(tasks, func(a, b PrioritizedTask) int {
		return cmp.Compare(priorityWeight[b.Priority], priorityWeight[a.Priority])
	})

	var counts PriorityCounts
	for _, t := range tasks {
		switch t.Priority {
		case PriorityHigh:
			counts.High++
		case PriorityMedium:
			counts.Medium++
		default:
			counts.Low++
		}
	}

	h.logger.Debug("tasks prioritized", map[string]interface{}{
		"total":   len(tasks),
		"high":    counts.High,
		"medium":  counts.Medium,
		"low":     counts.Low,
		"skipped": cls.Skipped,
	})

	recommendation := recommendationFor(counts)
	if cls.Skipped > 0 {
		recommendation += fmt.Sprintf(" Only the first %d tasks were prioritized; %d more were skipped.", len(tasks), cls.Skipped)
	}

	return &Output{
		PrioritizedTasks: tasks,
		Counts:           counts,
		SkippedTasks:     cls.Skipped,
		Recommendation:   recommendation,
		Metadata:         simulator.NewMetadata(AgentID),
	}
}
