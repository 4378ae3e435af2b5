package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/avenk/nixdev-cli/internal/adapters/render/builds"
)

func newWatchCmd(app *app) *cobra.Command {
	var (
		delay float64
		once  bool
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch running Nix builds",
		Long:  "Shows the builds currently executed by the Nix build users: process counts, derivation output paths and per-user process listings, refreshed until interrupted.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if once {
				snapshot, err := app.watchService.Snapshot(cmd.Context())
				if err != nil {
					return err
				}

				rendered, err := builds.Render(snapshot)
				if err != nil {
					return fmt.Errorf("render build snapshot: %w", err)
				}

				_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
				return err
			}

			interval := time.Duration(delay * float64(time.Second))
			if interval <= 0 {
				return fmt.Errorf("delay must be positive, got %v", delay)
			}

			return builds.Watch(cmd.Context(), app.watchService, interval, cmd.OutOrStdout())
		},
	}

	cmd.Flags().Float64VarP(&delay, "delay", "d", 0.25, "seconds between updates")
	cmd.Flags().BoolVarP(&once, "once", "1", false, "print one snapshot and exit")

	return cmd
}
