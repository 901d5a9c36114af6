package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write editor-parameters.json for the layout editor",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir := a.defaultDir
			if outDir != "" {
				dir = outDir
			}

			exporter, fileSink := a.exporterFor(dir)
			if !exporter.Save(cmd.Context()) {
				return errors.New("editor parameters were not saved")
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), fileSink.Path())
			return err
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "destination folder (defaults to the zonesnap config folder)")

	return cmd
}
