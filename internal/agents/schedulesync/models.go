// internal/agents/schedulesync/models.go
package schedulesync

import "agent-demos/internal/common/simulator"

type Input struct {
	PreferredDays  string `json:"preferredDays"`
	AttendeeEmails string `json:"attendeeEmails"`
	MeetingTopic   string `json:"meetingTopic"`
	PreferredTime  string `json:"preferredTime,omitempty"`
}

type Output struct {
	MeetingTopic     string             `json:"meetingTopic"`
	ScheduledDay     string             `json:"scheduledDay"`
	ScheduledTime    string             `json:"scheduledTime"`
	DurationMinutes  int                `json:"durationMinutes"`
	Attendees        []string           `json:"attendees"`
	InvalidAttendees []string           `json:"invalidAttendees"`
	Agenda           []string           `json:"agenda"`
	Confirmation     string             `json:"confirmation"`
	Metadata         simulator.Metadata `json:"metadata"`
}

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

type classification struct {
	Day       string
	Time      string
	DayForced bool
}
