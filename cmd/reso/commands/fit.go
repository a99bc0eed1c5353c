package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/reso/internal/app"
)

func (c *CLI) newFitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Check whether a height lands on whole pixels under a ratio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			height, _ := cmd.Flags().GetFloat64("height")
			ratio, _ := cmd.Flags().GetString("ratio")
			return c.app.Fit(cmd.OutOrStdout(), app.FitOptions{
				Height: height,
				Ratio:  ratio,
			})
		},
	}
	cmd.Flags().Float64("height", 0, "Height in pixels to check")
	cmd.Flags().StringP("ratio", "r", "16:9", "Aspect ratio, as W:H or a decimal")
	_ = cmd.MarkFlagRequired("height")
	return cmd
}
