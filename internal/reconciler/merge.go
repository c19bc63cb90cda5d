package reconciler

import (
	"log/slog"
	"slices"

	"github.com/NinaWiik/Tracker-app/pkg/entity"
)

// mergeHabitEvent folds a pushed habit change into the snapshot. Events of
// other owners and of previous generations are ignored.
func (r *Reconciler) mergeHabitEvent(gen uint64, ev entity.ChangeEvent) {
	if ev.Habit == nil {
		return
	}
	r.mu.Lock()
	if r.generation != gen || r.state == StateUninitialized || ev.OwnerID() != r.owner {
		r.mu.Unlock()
		return
	}
	habit := *ev.Habit
	idx := r.indexLocked(habit.ID)
	changed := false
	switch ev.Kind {
	case entity.EventCreated:
		if idx < 0 {
			r.habits = append(r.habits, habit)
			changed = true
		}
	case entity.EventUpdated:
		if idx >= 0 {
			r.habits[idx] = habit
			changed = true
		}
	case entity.EventDeleted:
		if idx >= 0 {
			r.habits = slices.Delete(r.habits, idx, idx+1)
			changed = true
		}
	}
	r.mu.Unlock()
	if changed {
		r.notify()
	}
}

// mergeCompletionEvent marks the completed habit as done today and then
// refetches completions regardless, since pushes may be duplicated or lost.
func (r *Reconciler) mergeCompletionEvent(gen uint64, ev entity.ChangeEvent) {
	if ev.Completion == nil || ev.Kind != entity.EventCreated {
		return
	}
	r.mu.Lock()
	if r.generation != gen || r.state == StateUninitialized || ev.OwnerID() != r.owner {
		r.mu.Unlock()
		return
	}
	completion := *ev.Completion
	r.completedToday[completion.HabitID] = struct{}{}
	if !slices.ContainsFunc(r.completions, func(c entity.HabitCompletion) bool { return c.ID == completion.ID }) {
		r.completions = append(r.completions, completion)
	}
	owner, ctx := r.owner, r.ctx
	r.beginLocked()
	r.mu.Unlock()
	r.notify()

	completions, err := r.store.ListCompletions(ctx, owner, r.since())

	r.mu.Lock()
	if r.generation != gen {
		r.mu.Unlock()
		return
	}
	if err == nil {
		r.setCompletionsLocked(completions)
	}
	r.endLocked()
	r.mu.Unlock()
	r.notify()
	if err != nil {
		r.logger.Warn("refetching completions", slog.String("error", err.Error()))
	}
}
