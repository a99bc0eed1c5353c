package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/reso/internal/app"
)

func (c *CLI) newWindowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Open a window at the given resolution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, _ := cmd.Flags().GetString("spec")
			title, _ := cmd.Flags().GetString("title")
			return c.app.Window(cmd.Context(), app.WindowOptions{
				Spec:  spec,
				Title: title,
			})
		},
	}
	cmd.Flags().StringP("spec", "s", "", "Resolution to open, e.g. 720p or 1280x720")
	cmd.Flags().StringP("title", "t", "", "Window title (defaults to the pixel size)")
	_ = cmd.MarkFlagRequired("spec")
	return cmd
}
