package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NinaWiik/Tracker-app/pkg/entity"
)

func TestFrequency(t *testing.T) {
	testCases := []struct {
		Desc  string
		Value entity.Frequency
		Valid bool
		Label string
	}{
		{Desc: "daily", Value: entity.FrequencyDaily, Valid: true, Label: "Daily"},
		{Desc: "weekly", Value: entity.FrequencyWeekly, Valid: true, Label: "Weekly"},
		{Desc: "monthly", Value: entity.FrequencyMonthly, Valid: true, Label: "Monthly"},
		{Desc: "unknown", Value: "hourly", Valid: false, Label: "Hourly"},
		{Desc: "empty", Value: "", Valid: false, Label: ""},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Valid, tc.Value.Valid())
			assert.Equal(t, tc.Label, tc.Value.Label())
		})
	}
}

func TestChangeEventOwner(t *testing.T) {
	h := entity.HabitEvent(entity.EventCreated, entity.Habit{ID: "h1", UserID: "u1"})
	assert.Equal(t, entity.ScopeHabits, h.Scope)
	assert.Equal(t, "u1", h.OwnerID())
	assert.Nil(t, h.Completion)

	c := entity.CompletionEvent(entity.EventCreated, entity.HabitCompletion{ID: "c1", HabitID: "h1", UserID: "u2"})
	assert.Equal(t, entity.ScopeCompletions, c.Scope)
	assert.Equal(t, "u2", c.OwnerID())

	assert.Empty(t, entity.ChangeEvent{}.OwnerID())
	assert.False(t, entity.Scope("users").Valid())
	assert.False(t, entity.EventKind("upsert").Valid())
}
