package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/spectrum/internal/theme"
	spectrumerrors "github.com/alexisbeaulieu97/spectrum/pkg/errors"
)

// Output formats accepted by `spectrum tokens`.
const (
	formatCSS      = "css"
	formatVars     = "vars"
	formatSwatches = "swatches"
	formatJSON     = "json"
	formatYAML     = "yaml"
)

var tokenFormats = []string{formatCSS, formatVars, formatSwatches, formatJSON, formatYAML}

type tokensOptions struct {
	Format string
}

func newTokensCmd(app *appContext) *cobra.Command {
	opts := tokensOptions{}
	controls := &controlFlags{}

	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Print the tokens derived from a preset or control flags",
		Long: `Derive a theme snapshot and print one of its projections:

  css       the copyable snippet (nine hand-picked tokens)
  vars      the full style-variable mapping as a :root block
  swatches  accent and surface swatches with their readable text colour
  json      the snapshot as JSON
  yaml      the snapshot as YAML`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, preset, err := controls.resolve(cmd, app.presets)
			if err != nil {
				return err
			}
			app.log.WithFields(map[string]any{
				"format": opts.Format,
				"preset": preset,
			}).Debug("printing tokens")
			return writeTokens(cmd.OutOrStdout(), opts.Format, theme.Derive(c))
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", formatCSS, "Output format ("+strings.Join(tokenFormats, ", ")+")")
	controls.register(cmd)

	return cmd
}

func writeTokens(w io.Writer, format string, snap theme.Snapshot) error {
	switch format {
	case formatCSS:
		_, err := fmt.Fprintln(w, theme.Snippet(snap))
		return err
	case formatVars:
		_, err := fmt.Fprintln(w, theme.Vars(snap).CSS())
		return err
	case formatSwatches:
		return writeSwatches(w, theme.Project(snap))
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return err
		}
		return enc.Close()
	default:
		return spectrumerrors.NewNotFoundError("format", format)
	}
}

func writeSwatches(w io.Writer, p theme.Projection) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LABEL\tVALUE\tHEX\tTEXT")
	for _, s := range p.Swatches() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.Label, s.Value, theme.Hex(s.Value), s.TextColor)
	}
	return tw.Flush()
}
