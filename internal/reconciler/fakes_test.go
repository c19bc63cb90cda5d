package reconciler_test

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	errorvalues "github.com/NinaWiik/Tracker-app/internal/error_values"
	"github.com/NinaWiik/Tracker-app/internal/store"
	"github.com/NinaWiik/Tracker-app/pkg/entity"
)

var errStoreDown = fmt.Errorf("%w: connection refused", errorvalues.ErrStore)

type subscription struct {
	scope    entity.Scope
	onEvent  func(entity.ChangeEvent)
	released int
}

// fakeStore is an in-memory store. Errors set on it are returned by the
// matching call; hooks run before the call does anything.
type fakeStore struct {
	mu          sync.Mutex
	habits      []entity.Habit
	completions []entity.HabitCompletion
	seq         int
	now         func() time.Time

	listHabitsErr  error
	listComplErr   error
	createErr      error
	deleteErr      error
	recordErr      error
	updateErr      error
	subscribeErr   map[entity.Scope]error
	beforeRecord   func()
	beforeDelete   func()
	beforeList     func()
	listHabitCalls int
	listComplCalls int
	lastSince      *time.Time
	recordCalls    int
	updateCalls    []int
	createCalls    int
	subscriptions  []*subscription
}

func newFakeStore(now func() time.Time) *fakeStore {
	return &fakeStore{now: now, subscribeErr: map[entity.Scope]error{}}
}

func (s *fakeStore) ListHabits(ctx context.Context, ownerID string) ([]entity.Habit, error) {
	if s.beforeList != nil {
		s.beforeList()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listHabitCalls++
	if s.listHabitsErr != nil {
		return nil, s.listHabitsErr
	}
	var out []entity.Habit
	for _, h := range s.habits {
		if h.UserID == ownerID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (s *fakeStore) ListCompletions(ctx context.Context, ownerID string, since *time.Time) ([]entity.HabitCompletion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listComplCalls++
	s.lastSince = since
	if s.listComplErr != nil {
		return nil, s.listComplErr
	}
	var out []entity.HabitCompletion
	for _, c := range s.completions {
		if c.UserID == ownerID && (since == nil || !c.CompletedAt.Before(*since)) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *fakeStore) CreateHabit(ctx context.Context, ownerID string, fields store.HabitFields) (*entity.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createCalls++
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.seq++
	now := s.now()
	h := entity.Habit{
		ID:            fmt.Sprintf("new-%d", s.seq),
		UserID:        ownerID,
		Title:         fields.Title,
		Description:   fields.Description,
		Frequency:     fields.Frequency,
		LastCompleted: now,
		CreatedAt:     now,
	}
	s.habits = append(s.habits, h)
	return &h, nil
}

func (s *fakeStore) DeleteHabit(ctx context.Context, id string) error {
	if s.beforeDelete != nil {
		s.beforeDelete()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.habits = slices.DeleteFunc(s.habits, func(h entity.Habit) bool { return h.ID == id })
	return nil
}

func (s *fakeStore) RecordCompletion(ctx context.Context, habitID, ownerID string) (*entity.HabitCompletion, error) {
	if s.beforeRecord != nil {
		s.beforeRecord()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recordCalls++
	if s.recordErr != nil {
		return nil, s.recordErr
	}
	s.seq++
	c := entity.HabitCompletion{ID: fmt.Sprintf("c-%d", s.seq), HabitID: habitID, UserID: ownerID, CompletedAt: s.now()}
	s.completions = append(s.completions, c)
	return &c, nil
}

func (s *fakeStore) UpdateHabitStreak(ctx context.Context, id string, streakCount int, lastCompleted time.Time) (*entity.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateCalls = append(s.updateCalls, streakCount)
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	for i := range s.habits {
		if s.habits[i].ID == id {
			s.habits[i].StreakCount = streakCount
			s.habits[i].LastCompleted = lastCompleted
			h := s.habits[i]
			return &h, nil
		}
	}
	return nil, fmt.Errorf("%w: %w", errorvalues.ErrStore, errorvalues.ErrHabitNotFound)
}

func (s *fakeStore) Subscribe(ctx context.Context, scope entity.Scope, onEvent func(entity.ChangeEvent)) (store.Unsubscribe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.subscribeErr[scope]; err != nil {
		return nil, err
	}
	sub := &subscription{scope: scope, onEvent: onEvent}
	s.subscriptions = append(s.subscriptions, sub)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		sub.released++
	}, nil
}

// push delivers ev to every subscription of its scope, released or not, the
// way a late message can still reach a closed handler.
func (s *fakeStore) push(ev entity.ChangeEvent) {
	s.mu.Lock()
	subs := slices.Clone(s.subscriptions)
	s.mu.Unlock()
	for _, sub := range subs {
		if sub.scope == ev.Scope {
			sub.onEvent(ev)
		}
	}
}

func (s *fakeStore) released() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, len(s.subscriptions))
	for i, sub := range s.subscriptions {
		out[i] = sub.released
	}
	return out
}

type fakeAuth struct {
	mu    sync.Mutex
	owner string
}

func (a *fakeAuth) OwnerID() (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.owner, a.owner != ""
}

func (a *fakeAuth) set(owner string) {
	a.mu.Lock()
	a.owner = owner
	a.mu.Unlock()
}
