package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/reso/internal/app"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List common resolutions, optionally with presets from a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			presets, _ := cmd.Flags().GetString("presets")
			return c.app.List(cmd.OutOrStdout(), app.ListOptions{
				PresetPath: presets,
			})
		},
	}
	cmd.Flags().StringP("presets", "p", "", "Path to a YAML preset file to include")
	return cmd
}
