package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/NinaWiik/Tracker-app/internal/error_values"
	"github.com/NinaWiik/Tracker-app/pkg/entity"
)

type HabitsRepositoryI interface {
	// Inserts habit row. ID must be set by the caller
	Create(ctx context.Context, habit *entity.Habit) error
	// Lists every habit owned by uid. Row order is not guaranteed
	ListByUserID(ctx context.Context, uid string) ([]entity.Habit, error)
	// Updates streak_count and last_completed only. Returns the updated row
	UpdateStreak(ctx context.Context, id string, streakCount int, lastCompleted time.Time) (*entity.Habit, error)
	// Deletes habit with id. Returns the deleted row
	Delete(ctx context.Context, id string) (*entity.Habit, error)
}

type CompletionsRepositoryI interface {
	// Inserts completion row. ID must be set by the caller
	Create(ctx context.Context, completion *entity.HabitCompletion) error
	// Lists completions owned by uid, optionally only those completed at or after since
	ListByUserID(ctx context.Context, uid string, since *time.Time) ([]entity.HabitCompletion, error)
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func dbError(what string, err error) error {
	return fmt.Errorf("%w: %s error: %w", errorvalues.ErrStore, what, err)
}
