package entity

// Scope names a collection whose row changes are pushed to subscribers.
type Scope string

const (
	ScopeHabits      Scope = "habits"
	ScopeCompletions Scope = "completions"
)

func (s Scope) Valid() bool {
	return s == ScopeHabits || s == ScopeCompletions
}

type EventKind string

const (
	EventCreated EventKind = "create"
	EventUpdated EventKind = "update"
	EventDeleted EventKind = "delete"
)

func (k EventKind) Valid() bool {
	switch k {
	case EventCreated, EventUpdated, EventDeleted:
		return true
	}
	return false
}

// ChangeEvent is a single row change. Exactly one of Habit and Completion is set,
// matching Scope.
type ChangeEvent struct {
	ID         string           `json:"id"`
	Scope      Scope            `json:"scope"`
	Kind       EventKind        `json:"kind"`
	Habit      *Habit           `json:"habit,omitempty"`
	Completion *HabitCompletion `json:"completion,omitempty"`
}

// OwnerID returns the owner of the changed row.
func (e ChangeEvent) OwnerID() string {
	switch {
	case e.Habit != nil:
		return e.Habit.UserID
	case e.Completion != nil:
		return e.Completion.UserID
	}
	return ""
}

func HabitEvent(kind EventKind, h Habit) ChangeEvent {
	return ChangeEvent{Scope: ScopeHabits, Kind: kind, Habit: &h}
}

func CompletionEvent(kind EventKind, c HabitCompletion) ChangeEvent {
	return ChangeEvent{Scope: ScopeCompletions, Kind: kind, Completion: &c}
}
