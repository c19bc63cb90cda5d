package reconciler

import (
	"slices"

	"github.com/NinaWiik/Tracker-app/pkg/entity"
)

type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
	StateReconciling
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateReconciling:
		return "reconciling"
	}
	return "unknown"
}

// Snapshot is a point-in-time copy of the reconciler's view. Callers may keep
// and modify it freely.
type Snapshot struct {
	State          State                    `json:"-"`
	OwnerID        string                   `json:"owner_id"`
	Habits         []entity.Habit           `json:"habits"`
	CompletedToday []string                 `json:"completed_today"`
	Completions    []entity.HabitCompletion `json:"completions,omitempty"`
}

func (s Snapshot) Habit(id string) (entity.Habit, bool) {
	for _, h := range s.Habits {
		if h.ID == id {
			return h, true
		}
	}
	return entity.Habit{}, false
}

func (s Snapshot) IsCompletedToday(habitID string) bool {
	_, found := slices.BinarySearch(s.CompletedToday, habitID)
	return found
}
