// internal/agents/financetracker/validation.go
package financetracker

import "agent-demos/internal/common/validation"

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"expensesInput": validation.Text("One expense per line, e.g. \"Uber ₹300\"", 5),
		},
		Required:      []string{"expensesInput"},
		PropertyOrder: []string{"expensesInput"},
	}
}
