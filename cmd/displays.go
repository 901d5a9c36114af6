package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"zonesnap/internal/probe"
)

func newDisplaysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "displays",
		Short: "List raw display bounds reported by the capture backend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			displays := probe.ActiveDisplays()
			if len(displays) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "no active displays")
				return err
			}

			for _, d := range displays {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "display %d: %dx%d at (%d, %d)\n",
					d.Index, d.Width, d.Height, d.Left, d.Top)
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
}
