package showcase

import (
	"fmt"
	"math"

	"github.com/alexisbeaulieu97/spectrum/internal/theme"
)

// focusTarget identifies the control that currently receives keys.
type focusTarget int

const (
	focusHue focusTarget = iota
	focusSaturation
	focusLightness
	focusDepth
	focusRadius
	focusDark
	focusEmail
	focusAutomation
	focusCount
)

func (f focusTarget) String() string {
	switch f {
	case focusHue:
		return "hue"
	case focusSaturation:
		return "saturation"
	case focusLightness:
		return "lightness"
	case focusDepth:
		return "depth"
	case focusRadius:
		return "radius"
	case focusDark:
		return "dark"
	case focusEmail:
		return "email"
	case focusAutomation:
		return "automation"
	default:
		return "unknown"
	}
}

func (f focusTarget) next() focusTarget {
	return (f + 1) % focusCount
}

func (f focusTarget) prev() focusTarget {
	return (f + focusCount - 1) % focusCount
}

// slider is one range control. Ranges match the sliders of the web page,
// which are narrower than what Derive accepts.
type slider struct {
	label string
	min   float64
	max   float64
	step  float64
	get   func(theme.Controls) float64
	set   func(*theme.Controls, float64)
	// format renders the current reading; it receives the snapshot so the
	// radius slider can show the derived md value.
	format func(theme.Controls, theme.Snapshot) string
}

var sliders = map[focusTarget]slider{
	focusHue: {
		label: "Accent hue", min: 0, max: 360, step: 1,
		get:    func(c theme.Controls) float64 { return c.Hue },
		set:    func(c *theme.Controls, v float64) { c.Hue = v },
		format: func(c theme.Controls, _ theme.Snapshot) string { return fmt.Sprintf("%s°", number(c.Hue)) },
	},
	focusSaturation: {
		label: "Accent saturation", min: 30, max: 100, step: 1,
		get:    func(c theme.Controls) float64 { return c.Saturation },
		set:    func(c *theme.Controls, v float64) { c.Saturation = v },
		format: func(c theme.Controls, _ theme.Snapshot) string { return number(c.Saturation) + "%" },
	},
	focusLightness: {
		label: "Accent lightness", min: 26, max: 70, step: 1,
		get:    func(c theme.Controls) float64 { return c.Lightness },
		set:    func(c *theme.Controls, v float64) { c.Lightness = v },
		format: func(c theme.Controls, _ theme.Snapshot) string { return number(c.Lightness) + "%" },
	},
	focusDepth: {
		label: "Surface depth", min: 0, max: 6, step: 1,
		get:    func(c theme.Controls) float64 { return c.Depth },
		set:    func(c *theme.Controls, v float64) { c.Depth = v },
		format: func(c theme.Controls, _ theme.Snapshot) string { return number(c.Depth) },
	},
	focusRadius: {
		label: "Radius", min: 10, max: 28, step: 1,
		get:    func(c theme.Controls) float64 { return c.Radius },
		set:    func(c *theme.Controls, v float64) { c.Radius = v },
		format: func(_ theme.Controls, s theme.Snapshot) string { return fmt.Sprintf("%dpx", s.Radius.MD) },
	},
}

// sliderOrder is the top-to-bottom order of the range controls.
var sliderOrder = []focusTarget{focusHue, focusSaturation, focusLightness, focusDepth, focusRadius}

// nudge moves the slider by steps and clamps to its range. It reports
// whether the value changed.
func (s slider) nudge(c *theme.Controls, steps float64) bool {
	before := s.get(*c)
	after := math.Min(s.max, math.Max(s.min, before+steps*s.step))
	if after == before {
		return false
	}
	s.set(c, after)
	return true
}

// ratio is the fill fraction of the slider track.
func (s slider) ratio(c theme.Controls) float64 {
	if s.max == s.min {
		return 0
	}
	r := (s.get(c) - s.min) / (s.max - s.min)
	return math.Min(1, math.Max(0, r))
}

func number(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
