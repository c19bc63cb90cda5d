package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/NinaWiik/Tracker-app/internal/error_values"
	"github.com/NinaWiik/Tracker-app/pkg/entity"
)

type CompletionsRepository struct {
	conn PgConnection
}

func NewCompletionsRepo(conn PgConnection) *CompletionsRepository {
	return &CompletionsRepository{
		conn: conn,
	}
}

func (cr *CompletionsRepository) Create(ctx context.Context, completion *entity.HabitCompletion) error {
	if completion == nil {
		return errors.New("completion is nil")
	}
	_, err := cr.conn.Exec(ctx, `INSERT INTO habit_completions (id, habit_id, user_id, completed_at) VALUES ($1, $2, $3, $4);`,
		completion.ID,
		completion.HabitID,
		completion.UserID,
		completion.CompletedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrHabitNotFound
			}
		}
		return dbError("creating completion", err)
	}
	return nil
}

func (cr *CompletionsRepository) ListByUserID(ctx context.Context, uid string, since *time.Time) ([]entity.HabitCompletion, error) {
	query := `SELECT id, habit_id, user_id, completed_at FROM habit_completions WHERE user_id = $1;`
	args := []any{uid}
	if since != nil {
		query = `SELECT id, habit_id, user_id, completed_at FROM habit_completions WHERE user_id = $1 AND completed_at >= $2;`
		args = append(args, *since)
	}
	rows, err := cr.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, dbError("listing completions", err)
	}
	defer rows.Close()
	result := make([]entity.HabitCompletion, 0)
	for rows.Next() {
		var c entity.HabitCompletion
		if err = rows.Scan(&c.ID, &c.HabitID, &c.UserID, &c.CompletedAt); err != nil {
			return nil, dbError("scanning completion row", err)
		}
		result = append(result, c)
	}
	if err = rows.Err(); err != nil {
		return nil, dbError("iterating completion rows", err)
	}
	return result, nil
}
