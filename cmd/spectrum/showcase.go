package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/spectrum/internal/showcase"
)

func newShowcaseCmd(app *appContext) *cobra.Command {
	controls := &controlFlags{}

	cmd := &cobra.Command{
		Use:   "showcase",
		Short: "Launch the interactive component showcase",
		Long: `Launch the terminal showcase. Adjust hue, saturation, lightness, depth,
radius and the dark surface switch and every preview widget re-renders
with the derived tokens.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShowcase(cmd, app, controls)
		},
	}
	controls.register(cmd)

	return cmd
}

// runShowcase is a variable so tests can replace the bubbletea program.
var runShowcase = func(cmd *cobra.Command, app *appContext, flags *controlFlags) error {
	controls, preset, err := flags.resolve(cmd, app.presets)
	if err != nil {
		return err
	}

	model := showcase.New(
		showcase.WithControls(controls),
		showcase.WithPreset(preset),
		showcase.WithLogger(app.log.WithComponent("showcase")),
	)

	app.log.WithFields(map[string]any{"preset": preset}).Info("launching showcase")
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
	if _, err := p.Run(); err != nil {
		app.log.Error(err, "showcase failed")
		return fmt.Errorf("run showcase: %w", err)
	}
	app.log.Debug("showcase closed")
	return nil
}
