package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NinaWiik/Tracker-app/internal/reconciler"
)

// NewCompleteCmd creates complete command
func NewCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <habit-id>",
		Short: "Mark a habit as done today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, args[0], "Completed", (*reconciler.Reconciler).Complete)
		},
	}
}

// NewDeleteCmd creates delete command
func NewDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <habit-id>",
		Short: "Delete a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, args[0], "Deleted", (*reconciler.Reconciler).Delete)
		},
	}
}

func runAction(cmd *cobra.Command, habitID, verb string, action func(*reconciler.Reconciler, context.Context, string) error) error {
	rt, err := openRuntime(cmd.Context())
	if err != nil {
		return userError(err)
	}
	rec, err := rt.mount(cmd.Context())
	if err != nil {
		return userError(err)
	}
	if err = action(rec, cmd.Context(), habitID); err != nil {
		return userError(err)
	}
	if flags.jsonOut {
		return printHabits(cmd.OutOrStdout(), rec.Snapshot(), true)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", verb, habitID)
	return err
}
