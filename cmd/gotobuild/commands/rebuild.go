package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newRebuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rebuild [dir]",
		Short: "Rebuild the file index from the given directory (default: current directory)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			n, err := c.app.Rebuild(cmd.Context(), dir)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "indexed %d files\n", n)
			return nil
		},
	}
}
