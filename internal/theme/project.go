package theme

import (
	"fmt"
	"sort"
	"strings"
)

// Text colours used on swatch chips.
const (
	LightSwatchText       = "#f8fafc"
	DarkSwatchText        = "#0b1120"
	DarkModeSurfaceText   = "white"
	readableLightnessEdge = 55
)

// StyleVars maps style-variable names (without the leading "--") to values.
type StyleVars map[string]string

// StyleVarNames is the fixed declaration order of the style-variable mapping.
var StyleVarNames = []string{
	"accent-600", "accent-500", "accent-400", "accent-100", "accent-50",
	"surface-0", "surface-100", "surface-200", "surface-300",
	"text-900", "text-700", "text-500",
	"accent-foreground",
	"shadow-lg",
	"radius-sm", "radius-md", "radius-lg",
}

// SnippetNames are the hand-picked tokens of the copyable snippet, in order.
var SnippetNames = []string{
	"accent-600", "accent-500", "accent-400", "accent-100",
	"surface-0", "surface-200",
	"text-900",
	"shadow-lg",
	"radius-lg",
}

// Vars projects a snapshot into its style-variable mapping.
func Vars(s Snapshot) StyleVars {
	vars := make(StyleVars, len(StyleVarNames))
	for _, tone := range AccentOrder {
		vars["accent-"+string(tone)] = s.Accent[tone].Color
	}
	for _, tone := range SurfaceDisplayOrder {
		vars["surface-"+string(tone)] = s.Surface[tone].Color
	}
	for _, tone := range TextOrder {
		vars["text-"+string(tone)] = s.Text[tone].Color
	}
	vars["accent-foreground"] = s.AccentForeground
	vars["shadow-lg"] = s.Shadow
	vars["radius-sm"] = pixels(s.Radius.SM)
	vars["radius-md"] = pixels(s.Radius.MD)
	vars["radius-lg"] = pixels(s.Radius.LG)
	return vars
}

// Names returns the mapping's keys: known names in declaration order first,
// then any others sorted.
func (v StyleVars) Names() []string {
	names := make([]string, 0, len(v))
	known := make(map[string]struct{}, len(StyleVarNames))
	for _, name := range StyleVarNames {
		known[name] = struct{}{}
		if _, ok := v[name]; ok {
			names = append(names, name)
		}
	}
	var extra []string
	for name := range v {
		if _, ok := known[name]; !ok {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}

// Subset returns a copy holding only the named entries that exist.
func (v StyleVars) Subset(names ...string) StyleVars {
	out := make(StyleVars, len(names))
	for _, name := range names {
		if value, ok := v[name]; ok {
			out[name] = value
		}
	}
	return out
}

// CSS renders the mapping as a :root declaration block.
func (v StyleVars) CSS() string {
	return rootBlock(v, v.Names())
}

// Swatch is one labelled colour chip and the text colour readable on it.
type Swatch struct {
	Label     string `json:"label" yaml:"label"`
	Value     string `json:"value" yaml:"value"`
	TextColor string `json:"textColor" yaml:"text_color"`
}

// AccentSwatches lists the accent tones from 600 to 50. Text colour is
// picked per tone from its lightness.
func AccentSwatches(s Snapshot) []Swatch {
	swatches := make([]Swatch, 0, len(AccentOrder))
	for _, tone := range AccentOrder {
		t := s.Accent[tone]
		swatches = append(swatches, Swatch{
			Label:     "Accent " + string(tone),
			Value:     t.Color,
			TextColor: ReadableOn(t.Lightness),
		})
	}
	return swatches
}

// SurfaceSwatches lists surface tones 0 to 300. Text colour follows the
// mode, not the individual tone.
func SurfaceSwatches(s Snapshot) []Swatch {
	text := DarkSwatchText
	if s.Dark {
		text = DarkModeSurfaceText
	}
	swatches := make([]Swatch, 0, len(SurfaceDisplayOrder))
	for _, tone := range SurfaceDisplayOrder {
		swatches = append(swatches, Swatch{
			Label:     "Surface " + string(tone),
			Value:     s.Surface[tone].Color,
			TextColor: text,
		})
	}
	return swatches
}

// ReadableOn picks light text for dark backgrounds and dark text otherwise.
func ReadableOn(lightness float64) string {
	if lightness < readableLightnessEdge {
		return LightSwatchText
	}
	return DarkSwatchText
}

// Snippet renders the copyable stylesheet snippet.
func Snippet(s Snapshot) string {
	return rootBlock(Vars(s), SnippetNames)
}

// Projection bundles every display artifact computed from one snapshot.
type Projection struct {
	Vars     StyleVars `json:"vars" yaml:"vars"`
	Accent   []Swatch  `json:"accent" yaml:"accent"`
	Surface  []Swatch  `json:"surface" yaml:"surface"`
	Snippet  string    `json:"snippet" yaml:"snippet"`
	Snapshot Snapshot  `json:"-" yaml:"-"`
}

// Project computes all projections of a snapshot.
func Project(s Snapshot) Projection {
	return Projection{
		Vars:     Vars(s),
		Accent:   AccentSwatches(s),
		Surface:  SurfaceSwatches(s),
		Snippet:  Snippet(s),
		Snapshot: s,
	}
}

// Swatches returns accent swatches followed by surface swatches.
func (p Projection) Swatches() []Swatch {
	out := make([]Swatch, 0, len(p.Accent)+len(p.Surface))
	out = append(out, p.Accent...)
	return append(out, p.Surface...)
}

func rootBlock(vars StyleVars, names []string) string {
	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("--%s: %s;", name, vars[name]))
	}
	return ":root {\n  " + strings.Join(lines, "\n  ") + "\n}"
}

func pixels(n int) string {
	return fmt.Sprintf("%dpx", n)
}
