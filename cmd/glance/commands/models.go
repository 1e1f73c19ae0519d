package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newModelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "Manage on-device language models",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List downloaded language models",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				langs, err := c.app.ListModels(cmd.Context(), configPath(cmd))
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, lang := range langs {
					_, _ = fmt.Fprintln(out, lang)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "download <lang>...",
			Short: "Download language models",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.app.DownloadModel(cmd.Context(), configPath(cmd), args...)
			},
		},
		&cobra.Command{
			Use:   "delete <lang>...",
			Short: "Delete downloaded language models",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.app.DeleteModel(cmd.Context(), configPath(cmd), args...)
			},
		},
	)
	return cmd
}
