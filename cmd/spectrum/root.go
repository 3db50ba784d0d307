package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/spectrum/internal/config"
)

type rootFlags struct {
	presetsPath string
	logLevel    string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &appContext{flags: flags}
	controls := &controlFlags{}

	cmd := &cobra.Command{
		Use:           "spectrum",
		Short:         "Spectrum derives design-system themes from six controls",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: launch the showcase.
			return runShowcase(cmd, app, controls)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.presetsPath, "presets", config.DefaultPath, "Presets file; built-in presets are used when it does not exist")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	controls.register(cmd)

	cmd.AddCommand(newShowcaseCmd(app))
	cmd.AddCommand(newTokensCmd(app))
	cmd.AddCommand(newVerifyCmd(app))
	cmd.AddCommand(newPageCmd(app))
	cmd.AddCommand(newServeCmd(app))
	cmd.AddCommand(newPresetsCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
