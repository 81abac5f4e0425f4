// internal/agents/taskmaster/rules.go
package taskmaster

import (
	"regexp"
	"strings"

	"agent-demos/internal/common/simulator"
)

var (
	bulletPattern    = regexp.MustCompile(`^(?:[-*•]+|\d+[.)]|\[[ xX]?\])\s*`)
	urgentPattern    = regexp.MustCompile(`(?i)\b(urgent|asap|deadline|due|today|tonight|eod|immediately|by (?:monday|tuesday|wednesday|thursday|friday|saturday|sunday|tomorrow))\b`)
	workPattern      = regexp.MustCompile(`(?i)\b(meeting|email|report|call|client|review|presentation|project|prepare|follow[ -]up|invoice)\b`)
	householdPattern = regexp.MustCompile(`(?i)\b(groceries|grocery|laundry|clean|dishes|buy|cook|vacuum|trash|errands?|water the plants)\b`)
)

// splitTasks returns the non-empty lines of raw with list markers removed,
// keeping at most limit of them and counting the rest as skipped.
func splitTasks(raw string, limit int) (tasks []string, skipped int) {
	tasks = make([]string, 0)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(bulletPattern.ReplaceAllString(strings.TrimSpace(line), ""))
		if line == "" {
			continue
		}
		if limit > 0 && len(tasks) == limit {
			skipped++
			continue
		}
		tasks = append(tasks, line)
	}
	return tasks, skipped
}

// prioritize applies the ordered rules to a single task.
func prioritize(task string, rng simulator.Rand, householdMediumRate float64) PrioritizedTask {
	switch {
	case urgentPattern.MatchString(task):
		return PrioritizedTask{Task: task, Priority: PriorityHigh, Reason: "Has a deadline or urgency cue"}
	case workPattern.MatchString(task):
		return PrioritizedTask{Task: task, Priority: PriorityMedium, Reason: "Professional or coordination work"}
	case householdPattern.MatchString(task):
		if simulator.Chance(rng, householdMediumRate) {
			return PrioritizedTask{Task: task, Priority: PriorityMedium, Reason: "Household chore, worth doing soon"}
		}
		return PrioritizedTask{Task: task, Priority: PriorityLow, Reason: "Household chore, can wait"}
	default:
		p := simulator.Pick(rng, []string{PriorityHigh, PriorityMedium, PriorityLow})
		return PrioritizedTask{Task: task, Priority: p, Reason: "No clear signal, estimated"}
	}
}

func recommendationFor(counts PriorityCounts) string {
	switch {
	case counts.High == 0 && counts.Medium == 0 && counts.Low == 0:
		return "No tasks found. Add one task per line."
	case counts.High > 3:
		return "You have several high-priority tasks. Consider delegating or renegotiating a deadline."
	case counts.High > 0:
		return "Start with your high-priority tasks first thing, then batch the rest."
	default:
		return "Nothing urgent today. Good time to make progress on medium-priority work."
	}
}
