// internal/agents/schedulesync/handler_test.go
package schedulesync

import (
	"context"
	"testing"

	"agent-demos/internal/common/errors"
	"agent-demos/internal/common/logger"
	"agent-demos/internal/common/simulator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSimulator(t *testing.T, rng simulator.Rand) *simulator.Simulator[Input, classification, Output] {
	t.Helper()
	return NewSimulator(DefaultConfig(), simulator.Options{
		Rand:   rng,
		Delay:  simulator.NoDelay{},
		Logger: logger.NewTestLogger(t),
	})
}

func validInput() *Input {
	return &Input{
		PreferredDays:  "Tue or Thu",
		AttendeeEmails: "alice@example.com, bob@example.org",
		MeetingTopic:   "Quarterly planning",
	}
}

func TestHandler_Run(t *testing.T) {
	sim := newTestSimulator(t, simulator.FixedRand{Int: 2})

	out, err := sim.Run(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, "Wednesday", out.ScheduledDay)
	assert.Equal(t, "2:00 PM", out.ScheduledTime)
	assert.Equal(t, []string{"alice@example.com", "bob@example.org"}, out.Attendees)
	assert.Empty(t, out.InvalidAttendees)
	assert.NotNil(t, out.InvalidAttendees)
	assert.Equal(t, 30, out.DurationMinutes)
	assert.Len(t, out.Agenda, 3)
	assert.Contains(t, out.Agenda[1], "Quarterly planning")
	assert.Equal(t, `Meeting "Quarterly planning" scheduled for Wednesday at 2:00 PM. Invites sent to 2 attendee(s).`, out.Confirmation)
}

func TestHandler_Classify_Monday(t *testing.T) {
	h := NewHandler(DefaultConfig(), logger.NewTestLogger(t))

	tests := []struct {
		days   string
		forced bool
	}{
		{days: "Mon", forced: true},
		{days: "monday afternoon", forced: true},
		{days: "MON-WED", forced: true},
		{days: "Mondays work best", forced: true},
		{days: "monday's fine", forced: true},
		{days: "mon.", forced: true},
		{days: "after the monsoon", forced: false},
		{days: "Simon's birthday week", forced: false},
		{days: "any day this month", forced: false},
		{days: "Tue, Fri", forced: false},
	}
	for _, tt := range tests {
		for seed := uint64(0); seed < 10; seed++ {
			cls := h.Classify(&Input{PreferredDays: tt.days}, simulator.NewSeededRand(seed))
			assert.Equal(t, tt.forced, cls.DayForced, tt.days)
			if tt.forced {
				assert.Equal(t, "Monday", cls.Day)
			} else {
				assert.Contains(t, weekdays, cls.Day)
			}
			assert.Contains(t, DefaultConfig().TimeSlots, cls.Time)
		}
	}
}

func TestHandler_Classify_PreferredTimeWins(t *testing.T) {
	h := NewHandler(DefaultConfig(), logger.NewTestLogger(t))

	cls := h.Classify(&Input{PreferredDays: "Friday", PreferredTime: " 9:15 AM "}, simulator.FixedRand{})
	assert.Equal(t, "9:15 AM", cls.Time)
	assert.Equal(t, "Monday", cls.Day, "FixedRand{} picks the first weekday")
}

func TestHandler_Run_InvalidAttendees(t *testing.T) {
	sim := newTestSimulator(t, simulator.FixedRand{})
	input := validInput()
	input.AttendeeEmails = "alice@example.com; not-an-email  ALICE@example.com\nbob@example.org"

	out, err := sim.Run(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice@example.com", "bob@example.org"}, out.Attendees)
	assert.Equal(t, []string{"not-an-email"}, out.InvalidAttendees)
	assert.Contains(t, out.Confirmation, "Skipped 1 invalid address(es).")
}

func TestHandler_Run_Validation(t *testing.T) {
	sim := newTestSimulator(t, simulator.FixedRand{})

	tests := []struct {
		name    string
		mutate  func(*Input)
		message string
	}{
		{name: "days", mutate: func(i *Input) { i.PreferredDays = "M" }, message: "preferredDays must be at least 3 characters"},
		{name: "emails", mutate: func(i *Input) { i.AttendeeEmails = "a@b" }, message: "attendeeEmails must be at least 5 characters"},
		{name: "topic", mutate: func(i *Input) { i.MeetingTopic = "hi" }, message: "meetingTopic must be at least 3 characters"},
		{name: "first field wins", mutate: func(i *Input) { i.MeetingTopic = ""; i.PreferredDays = "" }, message: "preferredDays must be at least 3 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			_, err := sim.Run(context.Background(), input)
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeValidationFailed, errors.Code(err))
			assert.Equal(t, tt.message, errors.Normalize(err).Message)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(map[string]interface{}{"time_slots": []interface{}{"9:00 AM"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"9:00 AM"}, cfg.TimeSlots)

	_, err = LoadConfig(map[string]interface{}{"duration_minutes": 0})
	assert.Error(t, err)
}
