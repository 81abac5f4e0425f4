// internal/agents/schedulesync/rules.go
package schedulesync

import (
	"fmt"
	"regexp"
	"strings"

	"agent-demos/internal/common/validation"
)

var (
	// "Mon", "Monday" or "Mondays" at a word start; "month" and "monsoon" are not days.
	mondayPattern    = regexp.MustCompile(`(?i)\bmon(?:days?|\b)`)
	attendeeSplitter = regexp.MustCompile(`[,;\s]+`)
)

// splitAttendees returns the valid and invalid addresses in input order, de-duplicated.
func splitAttendees(raw string) (valid, invalid []string) {
	valid, invalid = []string{}, []string{}
	seen := make(map[string]bool)
	for _, addr := range attendeeSplitter.Split(strings.TrimSpace(raw), -1) {
		if addr == "" || seen[strings.ToLower(addr)] {
			continue
		}
		seen[strings.ToLower(addr)] = true
		if validation.ValidateEmail(addr) {
			valid = append(valid, addr)
		} else {
			invalid = append(invalid, addr)
		}
	}
	return valid, invalid
}

func agendaFor(topic string, duration int) []string {
	return []string{
		"Introductions and goals (5 min)",
		fmt.Sprintf("Discussion: %s (%d min)", topic, max(duration-10, 5)),
		"Next steps and owners (5 min)",
	}
}
