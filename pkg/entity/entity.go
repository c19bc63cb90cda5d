package entity

import (
	"strings"
	"time"
)

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// Label is the capitalised form shown next to a habit ("Daily").
func (f Frequency) Label() string {
	if f == "" {
		return ""
	}
	s := string(f)
	return strings.ToUpper(s[:1]) + s[1:]
}

type Habit struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Frequency     Frequency `json:"frequency"`
	StreakCount   int       `json:"streak_count"`
	LastCompleted time.Time `json:"last_completed"`
	CreatedAt     time.Time `json:"created_at"`
}

type HabitCompletion struct {
	ID          string    `json:"id"`
	HabitID     string    `json:"habit_id"`
	UserID      string    `json:"user_id"`
	CompletedAt time.Time `json:"completed_at"`
}

type HabitStats struct {
	Current int `json:"current_streak"`
	Best    int `json:"best_streak"`
	Total   int `json:"total"`
}

type HabitStreak struct {
	Habit Habit `json:"habit"`
	HabitStats
}
