package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"agent-demos/internal/common/errors"

	"github.com/xeipuuv/gojsonschema"
)

// JSONSchema defines the structure for agent input/output schemas.
type JSONSchema struct {
	Type                 string              `json:"type"`
	Properties           map[string]Property `json:"properties"`
	Required             []string            `json:"required,omitempty"`
	AdditionalProperties bool                `json:"additionalProperties,omitempty"`
	// PropertyOrder fixes the order in which field errors are reported.
	PropertyOrder []string `json:"-"`
}

type Property struct {
	Type        string      `json:"type"`
	Description string      `json:"description,omitempty"`
	Default     interface{} `json:"default,omitempty"`
	Minimum     *float64    `json:"minimum,omitempty"`
	Maximum     *float64    `json:"maximum,omitempty"`
	Enum        []string    `json:"enum,omitempty"`
	Pattern     *string     `json:"pattern,omitempty"`
	MinLength   *int        `json:"minLength,omitempty"`
	MaxLength   *int        `json:"maxLength,omitempty"`
	Items       *Property   `json:"items,omitempty"`
}

// Text is a free-text property with the given minimum and the shared maximum.
func Text(description string, minLength int) Property {
	return Property{
		Type:        "string",
		Description: description,
		MinLength:   IntPtr(minLength),
		MaxLength:   IntPtr(MaxTextLength),
	}
}

// Choice is a string property restricted to the given values.
func Choice(description string, values ...string) Property {
	return Property{
		Type:        "string",
		Description: description,
		Enum:        values,
	}
}

// MaxTextLength caps every free-text field.
const MaxTextLength = 5000

// ToMap renders the schema as a plain JSON-schema document.
func (s JSONSchema) ToMap() map[string]interface{} {
	props := make(map[string]interface{}, len(s.Properties))
	for name, p := range s.Properties {
		props[name] = p.toMap()
	}
	out := map[string]interface{}{
		"type":       s.Type,
		"properties": props,
	}
	if len(s.Required) > 0 {
		out["required"] = s.Required
	}
	if !s.AdditionalProperties {
		out["additionalProperties"] = false
	}
	return out
}

func (p Property) toMap() map[string]interface{} {
	out := map[string]interface{}{"type": p.Type}
	if p.Description != "" {
		out["description"] = p.Description
	}
	if p.Default != nil {
		out["default"] = p.Default
	}
	if p.Minimum != nil {
		out["minimum"] = *p.Minimum
	}
	if p.Maximum != nil {
		out["maximum"] = *p.Maximum
	}
	if len(p.Enum) > 0 {
		out["enum"] = p.Enum
	}
	if p.Pattern != nil {
		out["pattern"] = *p.Pattern
	}
	if p.MinLength != nil {
		out["minLength"] = *p.MinLength
	}
	if p.MaxLength != nil {
		out["maxLength"] = *p.MaxLength
	}
	if p.Items != nil {
		out["items"] = p.Items.toMap()
	}
	return out
}

// Validate checks input (a struct with json tags, or a decoded map) against schema.
// It returns nil when the input is valid and a VALIDATION_FAILED StandardError otherwise.
func Validate(schema JSONSchema, input interface{}) error {
	fields, err := Check(schema, input)
	if err != nil {
		return errors.NewUnexpectedError(err)
	}
	if len(fields) > 0 {
		return errors.NewValidationError(fields)
	}
	return nil
}

// Check returns every failed constraint, ordered by schema.PropertyOrder.
func Check(schema JSONSchema, input interface{}) ([]errors.FieldError, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(schema.ToMap()),
		gojsonschema.NewGoLoader(input),
	)
	if err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}

	fields := make([]errors.FieldError, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		fields = append(fields, toFieldError(schema, re))
	}

	rank := make(map[string]int, len(schema.PropertyOrder))
	for i, name := range schema.PropertyOrder {
		rank[name] = i
	}
	sort.SliceStable(fields, func(i, j int) bool {
		ri, okI := rank[fields[i].Field]
		rj, okJ := rank[fields[j].Field]
		switch {
		case okI && okJ:
			return ri < rj
		case okI != okJ:
			return okI
		default:
			return fields[i].Field < fields[j].Field
		}
	})
	return fields, nil
}

func toFieldError(schema JSONSchema, re gojsonschema.ResultError) errors.FieldError {
	field := re.Field()
	details := re.Details()

	switch re.Type() {
	case "required":
		name := fmt.Sprintf("%v", details["property"])
		return errors.FieldError{Field: name, Message: fmt.Sprintf("%s is required", name), Code: "REQUIRED_FIELD_MISSING"}
	case "string_gte":
		return errors.FieldError{Field: field, Message: fmt.Sprintf("%s must be at least %v characters", field, details["min"]), Code: "MIN_LENGTH_VIOLATION"}
	case "string_lte":
		return errors.FieldError{Field: field, Message: fmt.Sprintf("%s must be at most %v characters", field, details["max"]), Code: "MAX_LENGTH_VIOLATION"}
	case "enum":
		allowed := strings.Join(schema.Properties[field].Enum, ", ")
		return errors.FieldError{Field: field, Message: fmt.Sprintf("%s must be one of: %s", field, allowed), Code: "INVALID_ENUM_VALUE"}
	case "invalid_type":
		return errors.FieldError{Field: field, Message: fmt.Sprintf("%s must be of type %v", field, details["expected"]), Code: "INVALID_TYPE"}
	case "additional_property_not_allowed":
		name := fmt.Sprintf("%v", details["property"])
		return errors.FieldError{Field: name, Message: fmt.Sprintf("%s is not an accepted field", name), Code: "EXTRA_FIELD"}
	default:
		return errors.FieldError{Field: field, Message: re.Description(), Code: strings.ToUpper(re.Type())}
	}
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail validates email format
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func IntPtr(i int) *int {
	return &i
}
