package config

import (
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/spectrum/internal/theme"
	spectrumerrors "github.com/alexisbeaulieu97/spectrum/pkg/errors"
)

// File is a presets document.
type File struct {
	Version string   `yaml:"version" validate:"required,semver"`
	Default string   `yaml:"default,omitempty" validate:"omitempty,preset_name"`
	Presets []Preset `yaml:"presets" validate:"required,min=1,dive"`
}

// Preset is a named set of control values. Ranges are wider than the
// showcase sliders; Derive clamps whatever lands outside its own bounds.
type Preset struct {
	Name        string  `yaml:"name" json:"name" validate:"required,preset_name"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty" validate:"max=200"`
	Hue         float64 `yaml:"hue" json:"hue" validate:"min=0,max=360"`
	Saturation  float64 `yaml:"saturation" json:"saturation" validate:"min=0,max=100"`
	Lightness   float64 `yaml:"lightness" json:"lightness" validate:"min=0,max=100"`
	Depth       float64 `yaml:"depth" json:"depth" validate:"min=0,max=6"`
	Radius      float64 `yaml:"radius" json:"radius" validate:"min=0,max=64"`
	Dark        bool    `yaml:"dark" json:"dark"`
}

// UnmarshalYAML fills fields the document leaves out with the default
// controls, so a preset can override just the hue.
func (p *Preset) UnmarshalYAML(value *yaml.Node) error {
	type rawPreset Preset

	d := theme.DefaultControls()
	raw := rawPreset{
		Hue:        d.Hue,
		Saturation: d.Saturation,
		Lightness:  d.Lightness,
		Depth:      d.Depth,
		Radius:     d.Radius,
		Dark:       d.Dark,
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	*p = Preset(raw)
	return nil
}

// Controls converts the preset into deriver input.
func (p Preset) Controls() theme.Controls {
	return theme.Controls{
		Hue:        p.Hue,
		Saturation: p.Saturation,
		Lightness:  p.Lightness,
		Depth:      p.Depth,
		Radius:     p.Radius,
		Dark:       p.Dark,
	}
}

// Lookup returns the preset called name.
func (f *File) Lookup(name string) (Preset, error) {
	if f != nil {
		for _, p := range f.Presets {
			if p.Name == name {
				return p, nil
			}
		}
	}
	return Preset{}, spectrumerrors.NewNotFoundError("preset", name)
}

// DefaultPreset returns the preset named by Default, or the first preset when
// Default is empty.
func (f *File) DefaultPreset() (Preset, error) {
	if f == nil || len(f.Presets) == 0 {
		return Preset{}, spectrumerrors.NewNotFoundError("preset", "default")
	}
	if f.Default == "" {
		return f.Presets[0], nil
	}
	return f.Lookup(f.Default)
}

// Names returns the preset names sorted alphabetically.
func (f *File) Names() []string {
	if f == nil {
		return nil
	}
	names := make([]string, 0, len(f.Presets))
	for _, p := range f.Presets {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}
