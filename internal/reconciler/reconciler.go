// Package reconciler keeps an in-memory view of one owner's habits and
// completions consistent with the store under optimistic updates, push
// events and refetches.
package reconciler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	errorvalues "github.com/NinaWiik/Tracker-app/internal/error_values"
	"github.com/NinaWiik/Tracker-app/internal/service"
	"github.com/NinaWiik/Tracker-app/internal/store"
	"github.com/NinaWiik/Tracker-app/internal/streak"
	"github.com/NinaWiik/Tracker-app/pkg/entity"
)

type Store interface {
	ListHabits(ctx context.Context, ownerID string) ([]entity.Habit, error)
	ListCompletions(ctx context.Context, ownerID string, since *time.Time) ([]entity.HabitCompletion, error)
	CreateHabit(ctx context.Context, ownerID string, fields store.HabitFields) (*entity.Habit, error)
	DeleteHabit(ctx context.Context, id string) error
	RecordCompletion(ctx context.Context, habitID, ownerID string) (*entity.HabitCompletion, error)
	UpdateHabitStreak(ctx context.Context, id string, streakCount int, lastCompleted time.Time) (*entity.Habit, error)
	Subscribe(ctx context.Context, scope entity.Scope, onEvent func(entity.ChangeEvent)) (store.Unsubscribe, error)
}

// Auth reports the signed in owner. ok is false when nobody is signed in.
type Auth interface {
	OwnerID() (ownerID string, ok bool)
}

// Reconciler owns the snapshot of one screen. All snapshot changes happen
// under mu; store calls never do.
//
// Every mount gets a new generation. Results and push events carrying an
// older generation are discarded, so nothing lands after Unmount.
type Reconciler struct {
	store   Store
	auth    Auth
	history bool
	now     func() time.Time
	logger  *slog.Logger

	onChange func(Snapshot)
	onError  func(string)

	mu             sync.Mutex
	state          State
	generation     uint64
	inflight       int
	owner          string
	ctx            context.Context
	habits         []entity.Habit
	completedToday map[string]struct{}
	completions    []entity.HabitCompletion
	completionsDay time.Time
	unsubscribers  []store.Unsubscribe
}

func New(s Store, auth Auth, opts ...Option) *Reconciler {
	r := &Reconciler{
		store:          s,
		auth:           auth,
		now:            time.Now,
		logger:         slog.Default(),
		completedToday: map[string]struct{}{},
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With(slog.String("component", "reconciler"))
	return r
}

// Mount loads the owner's habits and completions and subscribes to both
// scopes. Mounting again for the same owner acts as Focus; mounting for a
// different owner releases the previous subscriptions first.
func (r *Reconciler) Mount(ctx context.Context) error {
	owner, ok := r.auth.OwnerID()
	if !ok {
		r.Unmount()
		return r.fail(errorvalues.ErrAuthRequired)
	}

	r.mu.Lock()
	if r.state != StateUninitialized && r.owner == owner {
		r.mu.Unlock()
		return r.Focus(ctx)
	}
	stale := r.unsubscribers
	r.unsubscribers = nil
	r.generation++
	gen := r.generation
	r.owner = owner
	r.ctx = context.WithoutCancel(ctx)
	r.state = StateLoading
	r.inflight = 0
	r.resetLocked()
	r.mu.Unlock()
	release(stale)
	r.notify()

	r.logger.Debug("mounting", slog.String("owner_id", owner), slog.Bool("history", r.history))

	unsubscribers := make([]store.Unsubscribe, 0, 2)
	for _, sub := range []struct {
		scope   entity.Scope
		onEvent func(uint64, entity.ChangeEvent)
	}{
		{entity.ScopeHabits, r.mergeHabitEvent},
		{entity.ScopeCompletions, r.mergeCompletionEvent},
	} {
		onEvent := sub.onEvent
		unsubscribe, err := r.store.Subscribe(ctx, sub.scope, func(ev entity.ChangeEvent) {
			onEvent(gen, ev)
		})
		if err != nil {
			release(unsubscribers)
			r.mu.Lock()
			if r.generation == gen {
				r.generation++
				r.state = StateUninitialized
				r.resetLocked()
			}
			r.mu.Unlock()
			r.notify()
			return r.fail(err)
		}
		unsubscribers = append(unsubscribers, unsubscribe)
	}

	r.mu.Lock()
	if r.generation != gen {
		r.mu.Unlock()
		release(unsubscribers)
		return nil
	}
	r.unsubscribers = unsubscribers
	r.mu.Unlock()

	habits, completions, err := r.fetchAll(ctx, owner)

	r.mu.Lock()
	if r.generation != gen {
		r.mu.Unlock()
		return err
	}
	if err == nil {
		r.habits = habits
		r.setCompletionsLocked(completions)
	}
	// Only the initial fetch leaves Loading. Pushes handled meanwhile may
	// still be refetching.
	r.state = StateReady
	if r.inflight > 0 {
		r.state = StateReconciling
	}
	r.mu.Unlock()
	r.notify()
	if err != nil {
		return r.fail(err)
	}
	return nil
}

// Unmount releases both subscriptions and discards the snapshot. Calls still
// in flight complete but their results are dropped.
func (r *Reconciler) Unmount() {
	r.mu.Lock()
	if r.state == StateUninitialized && r.unsubscribers == nil {
		r.mu.Unlock()
		return
	}
	unsubscribers := r.unsubscribers
	r.unsubscribers = nil
	r.generation++
	r.state = StateUninitialized
	r.inflight = 0
	r.owner = ""
	r.resetLocked()
	r.mu.Unlock()
	release(unsubscribers)
	r.logger.Debug("unmounted")
}

// Focus refetches habits, and on the streak screen completions too. The habit
// list also reloads today's completions once the local day has rolled over
// since they were fetched. It is the repair path for anything the push
// channel missed.
func (r *Reconciler) Focus(ctx context.Context) error {
	owner, ok := r.auth.OwnerID()
	if !ok {
		r.Unmount()
		return r.fail(errorvalues.ErrAuthRequired)
	}
	r.mu.Lock()
	if r.state == StateUninitialized {
		r.mu.Unlock()
		return r.fail(errorvalues.ErrNotMounted)
	}
	if r.owner != owner {
		r.mu.Unlock()
		return r.Mount(ctx)
	}
	reload := r.history || !service.SameDay(r.now(), r.completionsDay)
	gen := r.beginLocked()
	r.mu.Unlock()
	r.notify()

	var (
		habits      []entity.Habit
		completions []entity.HabitCompletion
		err         error
	)
	if reload {
		habits, completions, err = r.fetchAll(ctx, owner)
	} else {
		habits, err = r.store.ListHabits(ctx, owner)
	}

	r.mu.Lock()
	if r.generation != gen {
		r.mu.Unlock()
		return err
	}
	if err == nil {
		r.habits = habits
		if reload {
			r.setCompletionsLocked(completions)
		}
	}
	r.endLocked()
	r.mu.Unlock()
	r.notify()
	if err != nil {
		return r.fail(err)
	}
	return nil
}

// Complete marks habitID done for today. The snapshot changes before any store
// call is issued and is rolled back if recording the completion or the streak
// update fails.
func (r *Reconciler) Complete(ctx context.Context, habitID string) error {
	owner, err := r.mountedOwner()
	if err != nil {
		return r.fail(err)
	}

	r.mu.Lock()
	idx := r.indexLocked(habitID)
	if idx < 0 {
		r.mu.Unlock()
		return r.fail(fmt.Errorf("completing %s: %w", habitID, errorvalues.ErrHabitNotFound))
	}
	if _, done := r.completedToday[habitID]; done {
		r.mu.Unlock()
		return r.fail(errorvalues.ErrAlreadyCompleted)
	}
	before := r.habits[idx]
	completedAt := r.now()
	r.habits[idx].StreakCount++
	r.habits[idx].LastCompleted = completedAt
	r.completedToday[habitID] = struct{}{}
	streakCount := r.habits[idx].StreakCount
	gen := r.beginLocked()
	r.mu.Unlock()
	r.notify()

	_, err = r.store.RecordCompletion(ctx, habitID, owner)
	if err == nil {
		_, err = r.store.UpdateHabitStreak(ctx, habitID, streakCount, completedAt)
	}

	r.mu.Lock()
	if r.generation != gen {
		r.mu.Unlock()
		return err
	}
	if err != nil {
		if i := r.indexLocked(habitID); i >= 0 {
			r.habits[i].StreakCount = before.StreakCount
			r.habits[i].LastCompleted = before.LastCompleted
		}
		delete(r.completedToday, habitID)
	}
	r.endLocked()
	r.mu.Unlock()
	r.notify()
	if err != nil {
		return r.fail(err)
	}
	return nil
}

// Delete removes habitID from the snapshot and then from the store. A failed
// delete is repaired by refetching the habit list rather than undone.
func (r *Reconciler) Delete(ctx context.Context, habitID string) error {
	owner, err := r.mountedOwner()
	if err != nil {
		return r.fail(err)
	}

	r.mu.Lock()
	idx := r.indexLocked(habitID)
	if idx < 0 {
		r.mu.Unlock()
		return r.fail(fmt.Errorf("deleting %s: %w", habitID, errorvalues.ErrHabitNotFound))
	}
	r.habits = slices.Delete(r.habits, idx, idx+1)
	gen := r.beginLocked()
	r.mu.Unlock()
	r.notify()

	err = r.store.DeleteHabit(ctx, habitID)
	var habits []entity.Habit
	var refetchErr error
	if err != nil {
		habits, refetchErr = r.store.ListHabits(ctx, owner)
		if refetchErr != nil {
			r.logger.Warn("refetching habits after failed delete", slog.String("error", refetchErr.Error()))
		}
	}

	r.mu.Lock()
	if r.generation != gen {
		r.mu.Unlock()
		return err
	}
	if err != nil && refetchErr == nil {
		r.habits = habits
	}
	r.endLocked()
	r.mu.Unlock()
	r.notify()
	if err != nil {
		return r.fail(err)
	}
	return nil
}

// CreateHabit validates form and stores a new habit. When mounted for the
// same owner the habit is added to the snapshot right away; the matching
// push event is then a no-op.
func (r *Reconciler) CreateHabit(ctx context.Context, form service.HabitForm) (*entity.Habit, error) {
	owner, ok := r.auth.OwnerID()
	if !ok {
		return nil, r.fail(errorvalues.ErrAuthRequired)
	}
	fields, err := service.ValidateHabitForm(form)
	if err != nil {
		return nil, r.fail(err)
	}
	habit, err := r.store.CreateHabit(ctx, owner, fields)
	if err != nil {
		return nil, r.fail(err)
	}
	r.mu.Lock()
	changed := false
	if r.state != StateUninitialized && r.owner == owner && r.indexLocked(habit.ID) < 0 {
		r.habits = append(r.habits, *habit)
		changed = true
	}
	r.mu.Unlock()
	if changed {
		r.notify()
	}
	return habit, nil
}

func (r *Reconciler) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

// Streaks ranks the snapshot's habits by their streaks over the loaded
// completions. Only meaningful with WithHistory.
func (r *Reconciler) Streaks() []entity.HabitStreak {
	s := r.Snapshot()
	return streak.Rank(s.Habits, s.Completions)
}

func (r *Reconciler) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Reconciler) fetchAll(ctx context.Context, owner string) ([]entity.Habit, []entity.HabitCompletion, error) {
	var (
		habits      []entity.Habit
		completions []entity.HabitCompletion
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		habits, err = r.store.ListHabits(gctx, owner)
		return err
	})
	g.Go(func() error {
		var err error
		completions, err = r.store.ListCompletions(gctx, owner, r.since())
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return habits, completions, nil
}

func (r *Reconciler) since() *time.Time {
	if r.history {
		return nil
	}
	midnight := service.StartOfDay(r.now())
	return &midnight
}

func (r *Reconciler) mountedOwner() (string, error) {
	owner, ok := r.auth.OwnerID()
	if !ok {
		return "", errorvalues.ErrAuthRequired
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == StateUninitialized {
		return "", errorvalues.ErrNotMounted
	}
	if r.owner != owner {
		return "", fmt.Errorf("%w: signed in user changed", errorvalues.ErrNotMounted)
	}
	return owner, nil
}

// setCompletionsLocked replaces the loaded completions and rebuilds the
// completed-today set from them.
func (r *Reconciler) setCompletionsLocked(completions []entity.HabitCompletion) {
	midnight := service.StartOfDay(r.now())
	r.completions = completions
	r.completionsDay = midnight
	r.completedToday = make(map[string]struct{}, len(completions))
	for _, c := range completions {
		if !c.CompletedAt.Before(midnight) {
			r.completedToday[c.HabitID] = struct{}{}
		}
	}
}

func (r *Reconciler) indexLocked(habitID string) int {
	return slices.IndexFunc(r.habits, func(h entity.Habit) bool { return h.ID == habitID })
}

func (r *Reconciler) resetLocked() {
	r.habits = nil
	r.completions = nil
	r.completionsDay = time.Time{}
	r.completedToday = map[string]struct{}{}
}

// beginLocked enters Reconciling for one pending operation. A pending
// initial fetch keeps the state at Loading.
func (r *Reconciler) beginLocked() uint64 {
	r.inflight++
	if r.state != StateLoading {
		r.state = StateReconciling
	}
	return r.generation
}

func (r *Reconciler) endLocked() {
	if r.inflight > 0 {
		r.inflight--
	}
	if r.inflight == 0 && r.state == StateReconciling {
		r.state = StateReady
	}
}

func (r *Reconciler) snapshotLocked() Snapshot {
	today := slices.Sorted(maps.Keys(r.completedToday))
	return Snapshot{
		State:          r.state,
		OwnerID:        r.owner,
		Habits:         slices.Clone(r.habits),
		CompletedToday: today,
		Completions:    slices.Clone(r.completions),
	}
}

func (r *Reconciler) notify() {
	if r.onChange == nil {
		return
	}
	r.onChange(r.Snapshot())
}

func (r *Reconciler) fail(err error) error {
	if errors.Is(err, errorvalues.ErrValidation) {
		r.logger.Debug("action rejected", slog.String("error", err.Error()))
	} else {
		r.logger.Error("action failed", slog.String("error", err.Error()))
	}
	if r.onError != nil {
		r.onError(errorvalues.UserMessage(err))
	}
	return err
}

func release(unsubscribers []store.Unsubscribe) {
	for _, unsubscribe := range unsubscribers {
		unsubscribe()
	}
}
