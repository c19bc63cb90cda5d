package realtime

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"

	errorvalues "github.com/NinaWiik/Tracker-app/internal/error_values"
	"github.com/NinaWiik/Tracker-app/pkg/entity"
)

func Encode(ev entity.ChangeEvent) ([]byte, error) {
	if err := Validate(ev); err != nil {
		return nil, err
	}
	return sonic.ConfigDefault.Marshal(ev)
}

// Decode parses a pushed payload and rejects anything that is not a
// well-formed change event, so subscribers only ever see typed rows.
func Decode(data []byte) (entity.ChangeEvent, error) {
	var ev entity.ChangeEvent
	if err := sonic.ConfigDefault.Unmarshal(data, &ev); err != nil {
		return entity.ChangeEvent{}, fmt.Errorf("%w: %w", errorvalues.ErrInvalidEventPayload, err)
	}
	if err := Validate(ev); err != nil {
		return entity.ChangeEvent{}, err
	}
	return ev, nil
}

func Validate(ev entity.ChangeEvent) error {
	if !ev.Kind.Valid() {
		return fmt.Errorf("%w: unknown event kind %q", errorvalues.ErrInvalidEventPayload, ev.Kind)
	}
	switch ev.Scope {
	case entity.ScopeHabits:
		if ev.Habit == nil || ev.Completion != nil {
			return fmt.Errorf("%w: habits event must carry a habit row", errorvalues.ErrInvalidEventPayload)
		}
		if strings.TrimSpace(ev.Habit.ID) == "" {
			return fmt.Errorf("%w: habit row without id", errorvalues.ErrInvalidEventPayload)
		}
	case entity.ScopeCompletions:
		if ev.Completion == nil || ev.Habit != nil {
			return fmt.Errorf("%w: completions event must carry a completion row", errorvalues.ErrInvalidEventPayload)
		}
		if strings.TrimSpace(ev.Completion.ID) == "" || strings.TrimSpace(ev.Completion.HabitID) == "" {
			return fmt.Errorf("%w: completion row without id or habit id", errorvalues.ErrInvalidEventPayload)
		}
	default:
		return fmt.Errorf("%w: unknown scope %q", errorvalues.ErrInvalidEventPayload, ev.Scope)
	}
	if strings.TrimSpace(ev.OwnerID()) == "" {
		return fmt.Errorf("%w: row without owner", errorvalues.ErrInvalidEventPayload)
	}
	return nil
}

func Subject(prefix string, scope entity.Scope, kind entity.EventKind) string {
	return prefix + "." + string(scope) + "." + string(kind)
}

// ScopeSubject matches every event kind of one scope.
func ScopeSubject(prefix string, scope entity.Scope) string {
	return prefix + "." + string(scope) + ".>"
}
