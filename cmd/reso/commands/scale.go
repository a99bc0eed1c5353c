package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/reso/internal/app"
)

func (c *CLI) newScaleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scale",
		Short: "Scale a resolution, or compare two",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, _ := cmd.Flags().GetString("from")
			to, _ := cmd.Flags().GetString("to")
			by, _ := cmd.Flags().GetString("by")
			keep, _ := cmd.Flags().GetBool("keep")
			return c.app.Scale(cmd.OutOrStdout(), app.ScaleOptions{
				From: from,
				To:   to,
				By:   by,
				Keep: keep,
			})
		},
	}
	cmd.Flags().StringP("from", "f", "", "Source resolution, e.g. 720p or 1280x720")
	cmd.Flags().StringP("to", "t", "", "Target resolution to compare against")
	cmd.Flags().StringP("by", "b", "", "Scale factor, e.g. 2 or 1.5x2")
	cmd.Flags().Bool("keep", false, "Refuse factors that change a fixed aspect ratio")
	_ = cmd.MarkFlagRequired("from")
	cmd.MarkFlagsOneRequired("to", "by")
	cmd.MarkFlagsMutuallyExclusive("to", "by")
	return cmd
}
