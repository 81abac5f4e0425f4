// internal/agents/schedulesync/handler.go
package schedulesync

import (
	"fmt"
	"strings"

	"agent-demos/internal/common/logger"
	"agent-demos/internal/common/simulator"
	"agent-demos/internal/common/validation"
)

const (
	AgentID  = "schedule-sync"
	TaskType = "demo." + AgentID
)

// Handler proposes a meeting slot for a set of attendees.
type Handler struct {
	config *Config
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		logger: logger.ForAgent(log, AgentID),
	}
}

func NewSimulator(config *Config, opts simulator.Options) *simulator.Simulator[Input, classification, Output] {
	if opts.Logger == nil {
		opts.Logger = logger.NewNoOpLogger()
	}
	return simulator.New[Input, classification, Output](AgentID, NewHandler(config, opts.Logger), opts)
}

func (h *Handler) Validate(input *Input) error {
	return validation.Validate(GetInputSchema(), input)
}

func (h *Handler) Classify(input *Input, rng simulator.Rand) classification {
	cls := classification{}
	if mondayPattern.MatchString(input.PreferredDays) {
		cls.Day, cls.DayForced = "Monday", true
	} else {
		cls.Day = simulator.Pick(rng, weekdays)
	}

	if t := strings.TrimSpace(input.PreferredTime); t != "" {
		cls.Time = t
	} else {
		cls.Time = simulator.Pick(rng, h.config.TimeSlots)
	}
	return cls
}

func (h *Handler) Compose(input *Input, cls classification, _ simulator.Rand) *Output {
	topic := strings.TrimSpace(input.MeetingTopic)
	valid, invalid := splitAttendees(input.AttendeeEmails)

	h.logger.Debug("meeting slot chosen", map[string]interface{}{
		"day":       cls.Day,
		"time":      cls.Time,
		"dayForced": cls.DayForced,
		"attendees": len(valid),
	})

	confirmation := fmt.Sprintf("Meeting \"%s\" scheduled for %s at %s. Invites sent to %d attendee(s).",
		topic, cls.Day, cls.Time, len(valid))
	if len(invalid) > 0 {
		confirmation += fmt.Sprintf(" Skipped %d invalid address(es).", len(invalid))
	}

	return &Output{
		MeetingTopic:     topic,
		ScheduledDay:     cls.Day,
		ScheduledTime:    cls.Time,
		DurationMinutes:  h.config.DurationMinutes,
		Attendees:        valid,
		InvalidAttendees: invalid,
		Agenda:           agendaFor(topic, h.config.DurationMinutes),
		Confirmation:     confirmation,
		Metadata:         simulator.NewMetadata(AgentID),
	}
}
