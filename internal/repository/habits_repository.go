package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/NinaWiik/Tracker-app/internal/error_values"
	"github.com/NinaWiik/Tracker-app/pkg/entity"
)

const habitColumns = `id, user_id, title, description, frequency, streak_count, last_completed, created_at`

type HabitsRepository struct {
	conn PgConnection
}

func NewHabitsRepo(conn PgConnection) *HabitsRepository {
	return &HabitsRepository{
		conn: conn,
	}
}

func (hr *HabitsRepository) Create(ctx context.Context, habit *entity.Habit) error {
	if habit == nil {
		return errors.New("habit is nil")
	}
	_, err := hr.conn.Exec(ctx, `INSERT INTO habits (`+habitColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		habit.ID,
		habit.UserID,
		habit.Title,
		habit.Description,
		string(habit.Frequency),
		habit.StreakCount,
		habit.LastCompleted,
		habit.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrHabitExists
			}
		}
		return dbError("creating habit", err)
	}
	return nil
}

func (hr *HabitsRepository) ListByUserID(ctx context.Context, uid string) ([]entity.Habit, error) {
	rows, err := hr.conn.Query(ctx, `SELECT `+habitColumns+` FROM habits WHERE user_id = $1;`, uid)
	if err != nil {
		return nil, dbError("listing habits", err)
	}
	defer rows.Close()
	habits := make([]entity.Habit, 0)
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, dbError("scanning habit row", err)
		}
		habits = append(habits, *h)
	}
	if err = rows.Err(); err != nil {
		return nil, dbError("iterating habit rows", err)
	}
	return habits, nil
}

func (hr *HabitsRepository) UpdateStreak(ctx context.Context, id string, streakCount int, lastCompleted time.Time) (*entity.Habit, error) {
	row := hr.conn.QueryRow(ctx, `UPDATE habits SET streak_count = $1, last_completed = $2 WHERE id = $3 RETURNING `+habitColumns+`;`,
		streakCount, lastCompleted, id,
	)
	habit, err := scanHabit(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, dbError("updating habit streak", err)
	}
	return habit, nil
}

func (hr *HabitsRepository) Delete(ctx context.Context, id string) (*entity.Habit, error) {
	row := hr.conn.QueryRow(ctx, `DELETE FROM habits WHERE id = $1 RETURNING `+habitColumns+`;`, id)
	habit, err := scanHabit(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, dbError("deleting habit", err)
	}
	return habit, nil
}

func scanHabit(row pgx.Row) (*entity.Habit, error) {
	var (
		h         entity.Habit
		frequency string
	)
	err := row.Scan(&h.ID, &h.UserID, &h.Title, &h.Description, &frequency, &h.StreakCount, &h.LastCompleted, &h.CreatedAt)
	if err != nil {
		return nil, err
	}
	h.Frequency = entity.Frequency(frequency)
	return &h, nil
}
