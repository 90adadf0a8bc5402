package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/gotobuild/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the cached index or the downloaded buildozer binary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tools, _ := cmd.Flags().GetBool("tools")
			all, _ := cmd.Flags().GetBool("all")

			var opts app.CleanOptions
			switch {
			case all:
				opts.Index = true
				opts.Tools = true
			case tools:
				opts.Tools = true
			default:
				opts.Index = true
			}

			return c.app.Clean(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolP("tools", "t", false, "Remove the downloaded buildozer binary")
	cmd.Flags().BoolP("all", "a", false, "Remove the index and the buildozer binary")

	return cmd
}
