package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/spectrum/internal/theme"
	"github.com/alexisbeaulieu97/spectrum/pkg/diff"
	spectrumerrors "github.com/alexisbeaulieu97/spectrum/pkg/errors"
)

type verifyOptions struct {
	Path string
	Full bool
	JSON bool
	Diff bool
}

type verifyReport struct {
	Path     string         `json:"path"`
	Controls theme.Controls `json:"controls"`
	Checked  int            `json:"checked"`
	Drift    []theme.Drift  `json:"drift"`
}

func newVerifyCmd(app *appContext) *cobra.Command {
	opts := verifyOptions{}
	controls := &controlFlags{}

	cmd := &cobra.Command{
		Use:   "verify <stylesheet>",
		Short: "Check a stylesheet snippet against the derived tokens",
		Long: `Verify parses the custom properties in a stylesheet and compares them with
the tokens derived for the selected controls. Only the snippet tokens are
checked unless --full is given. Exits with code 1 when any token drifts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Path = args[0]
			c, _, err := controls.resolve(cmd, app.presets)
			if err != nil {
				return err
			}
			return runVerify(cmd.OutOrStdout(), app, opts, c)
		},
	}

	cmd.Flags().BoolVar(&opts.Full, "full", false, "Require every style variable, not just the snippet tokens")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output results in JSON format")
	cmd.Flags().BoolVar(&opts.Diff, "diff", false, "Show a unified diff of the checked tokens")
	controls.register(cmd)

	return cmd
}

func runVerify(w io.Writer, app *appContext, opts verifyOptions, controls theme.Controls) error {
	data, err := os.ReadFile(opts.Path)
	if err != nil {
		return fmt.Errorf("read stylesheet: %w", err)
	}
	got, err := theme.ParseStylesheet(opts.Path, string(data))
	if err != nil {
		return err
	}

	want := theme.Vars(theme.Derive(controls))
	if !opts.Full {
		want = want.Subset(theme.SnippetNames...)
	}
	drift := theme.Diff(want, got)

	app.log.WithFields(map[string]any{
		"path":    opts.Path,
		"checked": len(want),
		"drift":   len(drift),
	}).Info("verification complete")

	if opts.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		report := verifyReport{Path: opts.Path, Controls: controls, Checked: len(want), Drift: drift}
		if report.Drift == nil {
			report.Drift = []theme.Drift{}
		}
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		printDrift(w, opts.Path, len(want), drift)
		if opts.Diff && len(drift) > 0 {
			// Both sides are re-rendered in canonical order so only values differ.
			fmt.Fprint(w, "\n"+diff.Unified(want.CSS(), got.Subset(want.Names()...).CSS(), "derived", opts.Path))
		}
	}

	if len(drift) > 0 {
		return spectrumerrors.NewDriftError(opts.Path, len(drift))
	}
	return nil
}

func printDrift(w io.Writer, path string, checked int, drift []theme.Drift) {
	if len(drift) == 0 {
		fmt.Fprintf(w, "✔ %s matches (%d tokens checked)\n", path, checked)
		return
	}
	fmt.Fprintf(w, "✖ %s drifts from the derived theme:\n", path)
	for _, d := range drift {
		fmt.Fprintf(w, "  %s\n", d)
	}
	fmt.Fprintf(w, "%d of %d tokens differ\n", len(drift), checked)
}
