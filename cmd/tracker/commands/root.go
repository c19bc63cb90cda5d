package commands

import (
	"github.com/spf13/cobra"

	"github.com/NinaWiik/Tracker-app/pkg/cleanup"
)

type globalFlags struct {
	token   string
	jsonOut bool
	debug   bool
}

var flags globalFlags

// NewRootCmd creates the tracker command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tracker",
		Short: "Habit tracker client",
		Long: `Headless client for the habit tracker.

Reads habits and completions of the signed in user, keeps them in sync with
pushed changes and applies completions and deletions optimistically.

The session token is taken from --token or SESSION_TOKEN.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flags.token, "token", "", "Session token (defaults to SESSION_TOKEN)")
	cmd.PersistentFlags().BoolVar(&flags.jsonOut, "json", false, "Print JSON instead of text")
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Verbose logging")

	cmd.AddCommand(NewWatchCmd())
	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewStreaksCmd())
	cmd.AddCommand(NewAddCmd())
	cmd.AddCommand(NewCompleteCmd())
	cmd.AddCommand(NewDeleteCmd())

	return cmd
}

func Execute() error {
	defer cleanup.CleanUp()
	return NewRootCmd().Execute()
}
