package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/spectrum/internal/page"
)

func newPageCmd(app *appContext) *cobra.Command {
	var output string
	controls := &controlFlags{}

	cmd := &cobra.Command{
		Use:   "page",
		Short: "Render the static Spectrum DS page to HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, preset, err := controls.resolve(cmd, app.presets)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}

			if err := page.Render(w, page.Data{Controls: c, Preset: preset}); err != nil {
				return err
			}
			app.log.WithFields(map[string]any{"output": output, "preset": preset}).Info("page written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "-", "Write the page to this file (- for stdout)")
	controls.register(cmd)

	return cmd
}
