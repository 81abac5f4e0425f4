// internal/agents/leadspark/validation.go
package leadspark

import "agent-demos/internal/common/validation"

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"leadQuery": validation.Text("LinkedIn profile URL or a free-text description of the lead", 5),
		},
		Required:      []string{"leadQuery"},
		PropertyOrder: []string{"leadQuery"},
	}
}
