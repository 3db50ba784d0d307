package server

import (
	"fmt"
	"math"
	"net/url"
	"strconv"

	"github.com/alexisbeaulieu97/spectrum/internal/config"
	"github.com/alexisbeaulieu97/spectrum/internal/theme"
	spectrumerrors "github.com/alexisbeaulieu97/spectrum/pkg/errors"
)

// selection is the outcome of reading controls from a query string. Preset
// is empty once any control overrides the preset it started from.
type selection struct {
	Controls theme.Controls
	Preset   string
}

// parseSelection starts from the requested preset (or the file default) and
// applies any individual control overrides from query.
func parseSelection(presets *config.File, query url.Values) (selection, error) {
	var (
		base config.Preset
		err  error
	)
	if name := query.Get("preset"); name != "" {
		base, err = presets.Lookup(name)
	} else {
		base, err = presets.DefaultPreset()
	}
	if err != nil {
		return selection{}, err
	}

	overridden := false
	fields := []struct {
		name   string
		target *float64
	}{
		{"hue", &base.Hue},
		{"saturation", &base.Saturation},
		{"lightness", &base.Lightness},
		{"depth", &base.Depth},
		{"radius", &base.Radius},
	}
	for _, f := range fields {
		raw := query.Get(f.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return selection{}, spectrumerrors.NewValidationError(f.name, fmt.Sprintf("%s must be a number, got %q", f.name, raw), err)
		}
		*f.target = v
		overridden = true
	}
	if raw := query.Get("dark"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return selection{}, spectrumerrors.NewValidationError("dark", fmt.Sprintf("dark must be a boolean, got %q", raw), err)
		}
		base.Dark = v
		overridden = true
	}

	name := base.Name
	if overridden {
		name = ""
	}
	if err := config.ValidatePreset(base); err != nil {
		return selection{}, err
	}
	return selection{Controls: base.Controls(), Preset: name}, nil
}
