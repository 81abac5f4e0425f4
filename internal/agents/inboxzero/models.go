// internal/agents/inboxzero/models.go
package inboxzero

import (
	"encoding/json"

	"agent-demos/internal/common/simulator"
)

type Input struct {
	EmailContent string `json:"emailContent"`
}

type Output struct {
	Summary        string             `json:"summary"`
	Category       string             `json:"category"`
	ActionItems    []string           `json:"actionItems"`
	SuggestedReply string             `json:"suggestedReply"`
	Metadata       simulator.Metadata `json:"metadata"`

	omitEmptyActionItems bool
}

func (o Output) MarshalJSON() ([]byte, error) {
	type alias Output
	if len(o.ActionItems) == 0 && o.omitEmptyActionItems {
		return json.Marshal(struct {
			alias
			ActionItems []string `json:"actionItems,omitempty"`
		}{alias: alias(o)})
	}
	if o.ActionItems == nil {
		o.ActionItems = []string{}
	}
	return json.Marshal(alias(o))
}

// Categories
const (
	CategoryImportant   = "Important"
	CategoryNeedsAction = "Needs Action"
	CategoryArchive     = "Archive"
	CategorySpam        = "Spam"
	CategoryFYI         = "FYI"
)

type classification struct {
	Category string
	Rule     string
	EOD      bool
	Review   bool
}
