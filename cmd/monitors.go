package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	monitorsadapter "zonesnap/internal/adapters/render/monitors"
)

func newMonitorsCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "monitors",
		Short: "Show the topology snapshot without writing it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			exporter, _ := a.exporterFor(a.defaultDir)
			params, err := exporter.Snapshot(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(params)
			}

			rendered := monitorsadapter.Render(params.Monitors, monitorsadapter.RenderOptions{
				Spanned: params.SpanZonesAcrossMonitors,
			})
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the editor parameters payload as JSON")

	return cmd
}
