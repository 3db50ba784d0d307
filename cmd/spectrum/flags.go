package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/spectrum/internal/config"
	"github.com/alexisbeaulieu97/spectrum/internal/theme"
)

// controlFlags are the six theme controls plus a starting preset.
type controlFlags struct {
	preset     string
	hue        float64
	saturation float64
	lightness  float64
	depth      float64
	radius     float64
	dark       bool
}

func (f *controlFlags) register(cmd *cobra.Command) {
	defaults := theme.DefaultControls()
	flags := cmd.Flags()
	flags.StringVarP(&f.preset, "preset", "p", "", "Start from this preset instead of the default one")
	flags.Float64Var(&f.hue, "hue", defaults.Hue, "Accent hue in degrees (0-360)")
	flags.Float64Var(&f.saturation, "saturation", defaults.Saturation, "Accent saturation in percent")
	flags.Float64Var(&f.lightness, "lightness", defaults.Lightness, "Accent lightness in percent")
	flags.Float64Var(&f.depth, "depth", defaults.Depth, "Surface depth (0-6)")
	flags.Float64Var(&f.radius, "radius", defaults.Radius, "Base corner radius in pixels")
	flags.BoolVar(&f.dark, "dark", defaults.Dark, "Use dark surfaces")
}

// resolve returns the controls selected on the command line and the name of
// the preset they match. The name is empty once any control flag overrides
// the preset.
func (f *controlFlags) resolve(cmd *cobra.Command, presets *config.File) (theme.Controls, string, error) {
	var (
		base config.Preset
		err  error
	)
	if f.preset != "" {
		base, err = presets.Lookup(f.preset)
	} else {
		base, err = presets.DefaultPreset()
	}
	if err != nil {
		return theme.Controls{}, "", err
	}

	flags := cmd.Flags()
	overrides := []struct {
		name   string
		target *float64
		value  float64
	}{
		{"hue", &base.Hue, f.hue},
		{"saturation", &base.Saturation, f.saturation},
		{"lightness", &base.Lightness, f.lightness},
		{"depth", &base.Depth, f.depth},
		{"radius", &base.Radius, f.radius},
	}
	name := base.Name
	for _, o := range overrides {
		if flags.Changed(o.name) {
			*o.target = o.value
			name = ""
		}
	}
	if flags.Changed("dark") {
		base.Dark = f.dark
		name = ""
	}

	if err := config.ValidatePreset(base); err != nil {
		return theme.Controls{}, "", err
	}
	return base.Controls(), name, nil
}
