package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/spectrum/internal/server"
)

func newServeCmd(app *appContext) *cobra.Command {
	cfg := server.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the page and the theme API over HTTP",
		Long: `Serve hosts the Spectrum DS page. Controls travel as query parameters
(hue, saturation, lightness, depth, radius, dark, preset) and the page is
derived per request. /theme.css returns the snippet and /api/theme the
snapshot with its projections.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Debug = app.flags.verbose
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := server.New(cfg, app.presets, app.log.WithComponent("server"))
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "Listen address")
	cmd.Flags().BoolVar(&cfg.EnableCORS, "cors", false, "Allow cross-origin requests to every route")

	return cmd
}
