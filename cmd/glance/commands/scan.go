package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/glance/internal/app"
)

func (c *CLI) newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Translate the screen once and print the resulting overlays",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snapshot, _ := cmd.Flags().GetString("snapshot")
			events, _ := cmd.Flags().GetBool("events")
			return c.app.Scan(cmd.Context(), app.ScanOptions{
				ConfigPath: configPath(cmd),
				Snapshot:   snapshot,
				Events:     events,
			})
		},
	}
	cmd.Flags().StringP("snapshot", "s", "", "Tree snapshot to scan (overrides the config file)")
	cmd.Flags().Bool("events", false, "Print overlay changes as they happen")
	return cmd
}
