package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NinaWiik/Tracker-app/internal/reconciler"
	"github.com/NinaWiik/Tracker-app/internal/service"
)

// NewAddCmd creates add command
func NewAddCmd() *cobra.Command {
	var form service.HabitForm
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a habit",
		Long: `Create a habit for the signed in user. Title and description are
required; frequency is one of daily, weekly or monthly.

Examples:
  tracker add --title Read --description "20 pages"
  tracker add --title Swim --description 1km --frequency weekly`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Reject bad input before dialing anything.
			if _, err := service.ValidateHabitForm(form); err != nil {
				return userError(err)
			}
			rt, err := openRuntime(cmd.Context())
			if err != nil {
				return userError(err)
			}
			rec := reconciler.New(rt.store, rt.session, reconciler.WithLogger(rt.logger))
			habit, err := rec.CreateHabit(cmd.Context(), form)
			if err != nil {
				return userError(err)
			}
			if flags.jsonOut {
				return writeJSON(cmd.OutOrStdout(), habit)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Created %q (%s) %s\n", habit.Title, habit.Frequency.Label(), habit.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&form.Title, "title", "", "Habit title")
	cmd.Flags().StringVar(&form.Description, "description", "", "Habit description")
	cmd.Flags().StringVar(&form.Frequency, "frequency", "daily", "daily, weekly or monthly")

	return cmd
}
