package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/glance/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Watch the screen and keep translated overlays up to date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snapshot, _ := cmd.Flags().GetString("snapshot")
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")

			// If --ci is set, override output-mode to "linear"
			if ci {
				outputMode = "linear"
			}

			return c.app.Run(cmd.Context(), app.RunOptions{
				ConfigPath: configPath(cmd),
				Snapshot:   snapshot,
				OutputMode: outputMode,
			})
		},
	}
	cmd.Flags().StringP("snapshot", "s", "", "Tree snapshot to observe (overrides the config file)")
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, tui, or linear")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")
	return cmd
}
