// internal/agents/contentcraft/models.go
package contentcraft

import "agent-demos/internal/common/simulator"

type Input struct {
	Prompt      string `json:"prompt"`
	ContentType string `json:"contentType"`
}

type Output struct {
	ContentType string             `json:"contentType"`
	Title       string             `json:"title"`
	Content     string             `json:"content"`
	Hashtags    []string           `json:"hashtags"`
	WordCount   int                `json:"wordCount"`
	Metadata    simulator.Metadata `json:"metadata"`
}

// Content types
const (
	TypeBlogPost           = "blogPost"
	TypeSocialMediaCaption = "socialMediaCaption"
	TypeProductDescription = "productDescription"
	TypeEmailDraft         = "emailDraft"
)

var contentTypes = []string{TypeBlogPost, TypeSocialMediaCaption, TypeProductDescription, TypeEmailDraft}

type classification struct {
	ContentType string
	Topic       string
	Variant     bool
}
