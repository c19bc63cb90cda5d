package commands

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/NinaWiik/Tracker-app/internal/reconciler"
)

// NewWatchCmd creates watch command
func NewWatchCmd() *cobra.Command {
	var history bool
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow habits as they change",
		Long: `Mount the habit list and print it every time it changes, whether
from a pushed change or a refetch, until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			rt, err := openRuntime(ctx)
			if err != nil {
				return userError(err)
			}
			out := cmd.OutOrStdout()
			opts := []reconciler.Option{
				reconciler.WithOnChange(func(s reconciler.Snapshot) {
					if s.State != reconciler.StateReady {
						return
					}
					rt.logger.Info("snapshot changed",
						slog.Int("habits", len(s.Habits)),
						slog.Int("completed_today", len(s.CompletedToday)),
					)
					if err := printHabits(out, s, flags.jsonOut); err != nil {
						rt.logger.Error("printing habits", slog.String("error", err.Error()))
					}
				}),
				reconciler.WithOnError(func(msg string) {
					rt.logger.Warn(msg)
				}),
			}
			if history {
				opts = append(opts, reconciler.WithHistory())
			}
			if _, err = rt.mount(ctx, opts...); err != nil {
				return userError(err)
			}
			<-ctx.Done()
			return nil
		},
	}

	cmd.Flags().BoolVar(&history, "history", false, "Load the full completion history")

	return cmd
}
