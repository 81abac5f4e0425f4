// internal/agents/shopsmart/validation.go
package shopsmart

import "agent-demos/internal/common/validation"

func GetInputSchema() validation.JSONSchema {
	age := validation.Choice("Who the gift is for", ageGroups...)
	age.Default = AgeAny
	gender := validation.Choice("Gender of the recipient", genders...)
	gender.Default = GenderAny

	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"productInterest": validation.Text("What the shopper is interested in", 3),
			"ageGroup":        age,
			"gender":          gender,
		},
		Required:      []string{"productInterest"},
		PropertyOrder: []string{"productInterest", "ageGroup", "gender"},
	}
}

// applyDefaults fills absent enum fields with "any".
func applyDefaults(input *Input) {
	if input.AgeGroup == "" {
		input.AgeGroup = AgeAny
	}
	if input.Gender == "" {
		input.Gender = GenderAny
	}
}
