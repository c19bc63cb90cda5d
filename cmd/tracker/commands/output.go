package commands

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/bytedance/sonic"

	errorvalues "github.com/NinaWiik/Tracker-app/internal/error_values"
	"github.com/NinaWiik/Tracker-app/internal/reconciler"
	"github.com/NinaWiik/Tracker-app/pkg/entity"
)

type habitRow struct {
	entity.Habit
	CompletedToday bool `json:"completed_today"`
}

func writeJSON(w io.Writer, v any) error {
	data, err := sonic.ConfigDefault.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func printHabits(w io.Writer, snap reconciler.Snapshot, asJSON bool) error {
	rows := make([]habitRow, len(snap.Habits))
	for i, h := range snap.Habits {
		rows[i] = habitRow{Habit: h, CompletedToday: snap.IsCompletedToday(h.ID)}
	}
	if asJSON {
		return writeJSON(w, rows)
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No habits yet.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DONE\tTITLE\tFREQUENCY\tSTREAK\tID")
	for _, r := range rows {
		mark := "[ ]"
		if r.CompletedToday {
			mark = "[x]"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", mark, r.Title, r.Frequency.Label(), r.StreakCount, r.ID)
	}
	return tw.Flush()
}

func printStreaks(w io.Writer, streaks []entity.HabitStreak, asJSON bool) error {
	if asJSON {
		return writeJSON(w, streaks)
	}
	if len(streaks) == 0 {
		_, err := fmt.Fprintln(w, "No habits yet.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTITLE\tCURRENT\tBEST\tTOTAL")
	for i, s := range streaks {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\n", i+1, s.Habit.Title, s.Current, s.Best, s.Total)
	}
	return tw.Flush()
}

// userError replaces errors of the tracker taxonomy with their user-facing
// text. Anything else, like flag errors, passes through.
func userError(err error) error {
	if err == nil {
		return nil
	}
	for _, target := range []error{
		errorvalues.ErrAuthRequired,
		errorvalues.ErrInvalidToken,
		errorvalues.ErrValidation,
		errorvalues.ErrHabitNotFound,
		errorvalues.ErrStore,
	} {
		if errors.Is(err, target) {
			return errors.New(errorvalues.UserMessage(err))
		}
	}
	return err
}
