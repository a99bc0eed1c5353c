package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/reso/internal/app"
)

func (c *CLI) newResizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resize",
		Short: "Change one dimension or the ratio of a resolution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			base, _ := cmd.Flags().GetString("base")
			height, _ := cmd.Flags().GetFloat64("height")
			width, _ := cmd.Flags().GetFloat64("width")
			ratio, _ := cmd.Flags().GetString("ratio")
			keep, _ := cmd.Flags().GetBool("keep")
			return c.app.Resize(cmd.OutOrStdout(), app.ResizeOptions{
				Base:   base,
				Height: height,
				Width:  width,
				Ratio:  ratio,
				Keep:   keep,
			})
		},
	}
	cmd.Flags().StringP("base", "b", "", "Resolution to resize, e.g. 720p or 1280x720")
	cmd.Flags().Float64("height", 0, "New height in pixels")
	cmd.Flags().Float64("width", 0, "New width in pixels")
	cmd.Flags().StringP("ratio", "r", "", "New aspect ratio, as W:H or a decimal")
	cmd.Flags().Bool("keep", false, "Maintain the current aspect ratio while resizing")
	_ = cmd.MarkFlagRequired("base")
	cmd.MarkFlagsOneRequired("height", "width", "ratio")
	cmd.MarkFlagsMutuallyExclusive("height", "width", "ratio")
	return cmd
}
