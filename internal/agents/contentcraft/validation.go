// internal/agents/contentcraft/validation.go
package contentcraft

import "agent-demos/internal/common/validation"

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"prompt":      validation.Text("What the content should be about", 10),
			"contentType": validation.Choice("Kind of content to draft", contentTypes...),
		},
		Required:      []string{"prompt", "contentType"},
		PropertyOrder: []string{"prompt", "contentType"},
	}
}
