// internal/agents/inboxzero/validation.go
package inboxzero

import "agent-demos/internal/common/validation"

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"emailContent": validation.Text("Raw email text, including subject if available", 10),
		},
		Required:      []string{"emailContent"},
		PropertyOrder: []string{"emailContent"},
	}
}
