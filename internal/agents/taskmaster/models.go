// internal/agents/taskmaster/models.go
package taskmaster

import "agent-demos/internal/common/simulator"

type Input struct {
	Tasks string `json:"tasks"`
}

type Output struct {
	PrioritizedTasks []PrioritizedTask  `json:"prioritizedTasks"`
	Counts           PriorityCounts     `json:"counts"`
	SkippedTasks     int                `json:"skippedTasks"` // lines past max_tasks
	Recommendation   string             `json:"recommendation"`
	Metadata         simulator.Metadata `json:"metadata"`
}

type PrioritizedTask struct {
	Task     string `json:"task"`
	Priority string `json:"priority"`
	Reason   string `json:"reason"`
}

type PriorityCounts struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// Priorities
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

var priorityWeight = map[string]int{
	PriorityHigh:   3,
	PriorityMedium: 2,
	PriorityLow:    1,
}

type classification struct {
	Tasks   []PrioritizedTask
	Skipped int
}
