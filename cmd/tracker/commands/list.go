package commands

import (
	"github.com/spf13/cobra"

	"github.com/NinaWiik/Tracker-app/internal/reconciler"
)

// NewListCmd creates list command
func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List habits",
		Long: `List the signed in user's habits with their streak and whether
they were completed today.

Examples:
  tracker list
  tracker list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(cmd.Context())
			if err != nil {
				return userError(err)
			}
			rec, err := rt.mount(cmd.Context())
			if err != nil {
				return userError(err)
			}
			return printHabits(cmd.OutOrStdout(), rec.Snapshot(), flags.jsonOut)
		},
	}
}

// NewStreaksCmd creates streaks command
func NewStreaksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "streaks",
		Short: "Rank habits by streak",
		Long: `Load the full completion history and rank habits by best streak,
then current streak, then title.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(cmd.Context())
			if err != nil {
				return userError(err)
			}
			rec, err := rt.mount(cmd.Context(), reconciler.WithHistory())
			if err != nil {
				return userError(err)
			}
			return printStreaks(cmd.OutOrStdout(), rec.Streaks(), flags.jsonOut)
		},
	}
}
