package repository

import "context"

const createHabitsTableSQL = `
CREATE TABLE IF NOT EXISTS habits (
  id text PRIMARY KEY,
  user_id text NOT NULL,
  title text NOT NULL,
  description text NOT NULL DEFAULT '',
  frequency text NOT NULL DEFAULT 'daily',
  streak_count integer NOT NULL DEFAULT 0,
  last_completed timestamptz NOT NULL DEFAULT now(),
  created_at timestamptz NOT NULL DEFAULT now()
)`

const createHabitsUserIndexSQL = `
CREATE INDEX IF NOT EXISTS habits_user_id_idx ON habits (user_id)`

// No uniqueness on (habit_id, day): duplicate completions are tolerated.
const createCompletionsTableSQL = `
CREATE TABLE IF NOT EXISTS habit_completions (
  id text PRIMARY KEY,
  habit_id text NOT NULL REFERENCES habits (id) ON DELETE CASCADE,
  user_id text NOT NULL,
  completed_at timestamptz NOT NULL DEFAULT now()
)`

const createCompletionsUserIndexSQL = `
CREATE INDEX IF NOT EXISTS habit_completions_user_id_completed_at_idx ON habit_completions (user_id, completed_at)`

// EnsureSchema creates the habits and habit_completions tables when missing.
func EnsureSchema(ctx context.Context, conn PgConnection) error {
	for _, stmt := range []string{
		createHabitsTableSQL,
		createHabitsUserIndexSQL,
		createCompletionsTableSQL,
		createCompletionsUserIndexSQL,
	} {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return dbError("ensuring schema", err)
		}
	}
	return nil
}
