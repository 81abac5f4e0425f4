// internal/agents/taskmaster/validation.go
package taskmaster

import "agent-demos/internal/common/validation"

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"tasks": validation.Text("One task per line", 5),
		},
		Required:      []string{"tasks"},
		PropertyOrder: []string{"tasks"},
	}
}
