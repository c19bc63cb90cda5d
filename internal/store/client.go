package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/NinaWiik/Tracker-app/internal/error_values"
	"github.com/NinaWiik/Tracker-app/internal/repository"
	"github.com/NinaWiik/Tracker-app/pkg/entity"
)

// Feed is the push channel the client publishes its writes to and hands
// subscriptions out of.
type Feed interface {
	Publish(ctx context.Context, ev entity.ChangeEvent) error
	Subscribe(ctx context.Context, scope entity.Scope, onEvent func(entity.ChangeEvent)) (func(), error)
}

// Unsubscribe releases a subscription. Calling it more than once is safe.
type Unsubscribe func()

type HabitFields struct {
	Title       string
	Description string
	Frequency   entity.Frequency
}

// Client translates habit tracker operations into owner-scoped repository
// calls. It carries no business logic.
type Client struct {
	habits      repository.HabitsRepositoryI
	completions repository.CompletionsRepositoryI
	feed        Feed
	logger      *slog.Logger
	timeout     time.Duration
	now         func() time.Time
	newID       func() string
}

type Option func(*Client)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTimeout bounds every store call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(c *Client) {
		c.newID = newID
	}
}

func NewClient(habitsRepo repository.HabitsRepositoryI, completionsRepo repository.CompletionsRepositoryI, feed Feed, opts ...Option) *Client {
	if habitsRepo == nil || completionsRepo == nil || feed == nil {
		log.Fatal("on store client provided nil dependencies")
	}
	c := &Client{
		habits:      habitsRepo,
		completions: completionsRepo,
		feed:        feed,
		logger:      slog.Default(),
		now:         time.Now,
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(slog.String("component", "store"))
	return c
}

func (c *Client) ListHabits(ctx context.Context, ownerID string) ([]entity.Habit, error) {
	if ownerID == "" {
		return nil, errorvalues.ErrAuthRequired
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	habits, err := c.habits.ListByUserID(ctx, ownerID)
	if err != nil {
		return nil, storeError("listing habits", err)
	}
	return habits, nil
}

// ListCompletions returns the owner's completions. A non-nil since keeps only
// rows completed at or after it.
func (c *Client) ListCompletions(ctx context.Context, ownerID string, since *time.Time) ([]entity.HabitCompletion, error) {
	if ownerID == "" {
		return nil, errorvalues.ErrAuthRequired
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	completions, err := c.completions.ListByUserID(ctx, ownerID, since)
	if err != nil {
		return nil, storeError("listing completions", err)
	}
	return completions, nil
}

func (c *Client) CreateHabit(ctx context.Context, ownerID string, fields HabitFields) (*entity.Habit, error) {
	if ownerID == "" {
		return nil, errorvalues.ErrAuthRequired
	}
	now := c.now()
	habit := entity.Habit{
		ID:            c.newID(),
		UserID:        ownerID,
		Title:         fields.Title,
		Description:   fields.Description,
		Frequency:     fields.Frequency,
		StreakCount:   0,
		LastCompleted: now,
		CreatedAt:     now,
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	if err := c.habits.Create(ctx, &habit); err != nil {
		return nil, storeError("creating habit", err)
	}
	c.publish(ctx, entity.HabitEvent(entity.EventCreated, habit))
	return &habit, nil
}

// DeleteHabit removes the habit. Deleting an id that no longer exists is
// reported as success.
func (c *Client) DeleteHabit(ctx context.Context, id string) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	deleted, err := c.habits.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			c.logger.Debug("habit already deleted", slog.String("habit_id", id))
			return nil
		}
		return storeError("deleting habit", err)
	}
	c.publish(ctx, entity.HabitEvent(entity.EventDeleted, *deleted))
	return nil
}

func (c *Client) RecordCompletion(ctx context.Context, habitID, ownerID string) (*entity.HabitCompletion, error) {
	if ownerID == "" {
		return nil, errorvalues.ErrAuthRequired
	}
	completion := entity.HabitCompletion{
		ID:          c.newID(),
		HabitID:     habitID,
		UserID:      ownerID,
		CompletedAt: c.now(),
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	if err := c.completions.Create(ctx, &completion); err != nil {
		return nil, storeError("recording completion", err)
	}
	c.publish(ctx, entity.CompletionEvent(entity.EventCreated, completion))
	return &completion, nil
}

// UpdateHabitStreak writes streak_count and last_completed and nothing else.
func (c *Client) UpdateHabitStreak(ctx context.Context, id string, streakCount int, lastCompleted time.Time) (*entity.Habit, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	updated, err := c.habits.UpdateStreak(ctx, id, streakCount, lastCompleted)
	if err != nil {
		return nil, storeError("updating habit streak", err)
	}
	c.publish(ctx, entity.HabitEvent(entity.EventUpdated, *updated))
	return updated, nil
}

// Subscribe forwards every change of scope to onEvent, regardless of owner.
// The caller must call the returned Unsubscribe when done.
func (c *Client) Subscribe(ctx context.Context, scope entity.Scope, onEvent func(entity.ChangeEvent)) (Unsubscribe, error) {
	unsubscribe, err := c.feed.Subscribe(ctx, scope, onEvent)
	if err != nil {
		return nil, storeError("subscribing to "+string(scope), err)
	}
	return Unsubscribe(unsubscribe), nil
}

// Publishing is best effort: a lost event is repaired by the next refetch.
func (c *Client) publish(ctx context.Context, ev entity.ChangeEvent) {
	if err := c.feed.Publish(ctx, ev); err != nil {
		c.logger.Warn("publishing change event",
			slog.String("scope", string(ev.Scope)),
			slog.String("kind", string(ev.Kind)),
			slog.String("error", err.Error()),
		)
	}
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func storeError(what string, err error) error {
	if errors.Is(err, errorvalues.ErrStore) {
		return fmt.Errorf("%s: %w", what, err)
	}
	return fmt.Errorf("%w: %s: %w", errorvalues.ErrStore, what, err)
}
