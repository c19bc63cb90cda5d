package errorvalues

import (
	"errors"
	"fmt"
)

var (
	ErrAuthRequired = errors.New("authentication required")
	ErrStore        = errors.New("store error")
	ErrValidation   = errors.New("validation error")

	ErrHabitNotFound       = errors.New("habit doesn't exist")
	ErrHabitExists         = errors.New("habit with such id already exists")
	ErrInvalidToken        = errors.New("invalid token")
	ErrInvalidEventPayload = errors.New("invalid event payload")
	ErrNotMounted          = errors.New("reconciler is not mounted")

	ErrAlreadyCompleted = fmt.Errorf("%w: habit already completed today", ErrValidation)
)

// UserMessage turns an error into text that can be shown as-is.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrAuthRequired), errors.Is(err, ErrInvalidToken):
		return "You must be logged in to do that"
	case errors.Is(err, ErrAlreadyCompleted):
		return "This habit is already completed for today"
	case errors.Is(err, ErrValidation):
		return "Please fill in all fields"
	case errors.Is(err, ErrHabitNotFound):
		return "Habit not found"
	case errors.Is(err, ErrStore):
		return "Couldn't reach the server, please try again"
	default:
		return "Something went wrong, please try again"
	}
}
