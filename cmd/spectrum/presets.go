package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newPresetsCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source := app.flags.presetsPath
			if !app.fromDisk {
				source = "built-in"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Presets (%s)\n\n", source)

			defaultName := ""
			if p, err := app.presets.DefaultPreset(); err == nil {
				defaultName = p.Name
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tHUE\tSAT\tLIGHT\tDEPTH\tRADIUS\tMODE\tDESCRIPTION")
			for _, name := range app.presets.Names() {
				p, err := app.presets.Lookup(name)
				if err != nil {
					return err
				}
				marker := ""
				if name == defaultName {
					marker = " *"
				}
				c := p.Controls()
				fmt.Fprintf(tw, "%s%s\t%g\t%g\t%g\t%g\t%g\t%s\t%s\n",
					p.Name, marker, c.Hue, c.Saturation, c.Lightness, c.Depth, c.Radius, c.Mode(), p.Description)
			}
			return tw.Flush()
		},
	}

	return cmd
}
