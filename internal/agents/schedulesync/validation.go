// internal/agents/schedulesync/validation.go
package schedulesync

import "agent-demos/internal/common/validation"

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"preferredDays":  validation.Text("Days that suit the organiser, e.g. \"Mon or Wed\"", 3),
			"attendeeEmails": validation.Text("Comma-separated attendee email addresses", 5),
			"meetingTopic":   validation.Text("What the meeting is about", 3),
			"preferredTime": {
				Type:        "string",
				Description: "Optional fixed start time, e.g. \"3:00 PM\"",
				MaxLength:   validation.IntPtr(32),
			},
		},
		Required:      []string{"preferredDays", "attendeeEmails", "meetingTopic"},
		PropertyOrder: []string{"preferredDays", "attendeeEmails", "meetingTopic", "preferredTime"},
	}
}
