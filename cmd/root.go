package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "zonesnap",
		Short:         "zonesnap: export display topology for the zone layout editor",
		Long:          "zonesnap snapshots the current monitor topology (per-monitor DPI, work areas, virtual desktop identity) and writes the editor-parameters.json file the zone layout editor reads on startup.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newExportCmd(app),
		newMonitorsCmd(app),
		newDisplaysCmd(),
	)

	return rootCmd
}
