package validation

import (
	"testing"

	"agent-demos/internal/common/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Prompt      string `json:"prompt"`
	ContentType string `json:"contentType"`
}

func sampleSchema() JSONSchema {
	return JSONSchema{
		Type: "object",
		Properties: map[string]Property{
			"prompt":      Text("What to write about", 10),
			"contentType": Choice("Kind of content", "blogPost", "emailDraft"),
		},
		Required:      []string{"prompt", "contentType"},
		PropertyOrder: []string{"prompt", "contentType"},
	}
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, Validate(sampleSchema(), sampleInput{Prompt: "a launch announcement", ContentType: "blogPost"}))
}

func TestCheck_OrderedFieldErrors(t *testing.T) {
	fields, err := Check(sampleSchema(), sampleInput{Prompt: "short", ContentType: "haiku"})
	require.NoError(t, err)
	require.Len(t, fields, 2)

	assert.Equal(t, "prompt", fields[0].Field)
	assert.Equal(t, "prompt must be at least 10 characters", fields[0].Message)
	assert.Equal(t, "MIN_LENGTH_VIOLATION", fields[0].Code)

	assert.Equal(t, "contentType", fields[1].Field)
	assert.Equal(t, "contentType must be one of: blogPost, emailDraft", fields[1].Message)
}

func TestCheck_RuneLength(t *testing.T) {
	// 10 runes, 30 bytes
	fields, err := Check(sampleSchema(), sampleInput{Prompt: "日本語の文章です。。", ContentType: "blogPost"})
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestCheck_MaxLength(t *testing.T) {
	long := make([]rune, MaxTextLength+1)
	for i := range long {
		long[i] = 'a'
	}
	fields, err := Check(sampleSchema(), sampleInput{Prompt: string(long), ContentType: "blogPost"})
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "prompt must be at most 5000 characters", fields[0].Message)
}

func TestCheck_MapInput(t *testing.T) {
	fields, err := Check(sampleSchema(), map[string]interface{}{"prompt": "a long enough prompt", "extra": true})
	require.NoError(t, err)

	codes := make([]string, 0, len(fields))
	for _, f := range fields {
		codes = append(codes, f.Code)
	}
	assert.ElementsMatch(t, []string{"REQUIRED_FIELD_MISSING", "EXTRA_FIELD"}, codes)
}

func TestValidate_ReturnsValidationError(t *testing.T) {
	err := Validate(sampleSchema(), sampleInput{ContentType: "blogPost"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeValidationFailed, errors.Code(err))
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("ana@example.com"))
	assert.True(t, ValidateEmail("first.last+tag@sub.example.co"))
	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("a@b"))
}

func TestSchema_ToMap(t *testing.T) {
	m := sampleSchema().ToMap()
	assert.Equal(t, "object", m["type"])
	assert.Equal(t, false, m["additionalProperties"])

	props := m["properties"].(map[string]interface{})
	prompt := props["prompt"].(map[string]interface{})
	assert.Equal(t, 10, prompt["minLength"])
	assert.Equal(t, MaxTextLength, prompt["maxLength"])
}
