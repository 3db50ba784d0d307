package theme

// AccentTone names a graduation of the accent ramp.
type AccentTone string

const (
	Accent600 AccentTone = "600"
	Accent500 AccentTone = "500"
	Accent400 AccentTone = "400"
	Accent100 AccentTone = "100"
	Accent50  AccentTone = "50"
)

// SurfaceTone names a graduation of the neutral surface ramp.
type SurfaceTone string

const (
	Surface0   SurfaceTone = "0"
	Surface100 SurfaceTone = "100"
	Surface200 SurfaceTone = "200"
	Surface300 SurfaceTone = "300"
	Surface950 SurfaceTone = "950"
)

// TextTone names a typography colour.
type TextTone string

const (
	Text900 TextTone = "900"
	Text700 TextTone = "700"
	Text500 TextTone = "500"
)

var (
	// AccentOrder lists accent tones from darkest to lightest.
	AccentOrder = []AccentTone{Accent600, Accent500, Accent400, Accent100, Accent50}
	// SurfaceOrder lists every surface tone in ordinal order. The ordinal
	// drives the per-tone hue and saturation nudge.
	SurfaceOrder = []SurfaceTone{Surface0, Surface100, Surface200, Surface300, Surface950}
	// SurfaceDisplayOrder omits 950, which is derived but never displayed.
	SurfaceDisplayOrder = []SurfaceTone{Surface0, Surface100, Surface200, Surface300}
	// TextOrder lists text tones from strongest to weakest.
	TextOrder = []TextTone{Text900, Text700, Text500}
)

// Tone is one computed colour together with the HSL components it was built from.
type Tone struct {
	Color      string  `json:"color" yaml:"color"`
	Hue        float64 `json:"hue" yaml:"hue"`
	Saturation float64 `json:"saturation" yaml:"saturation"`
	Lightness  float64 `json:"lightness" yaml:"lightness"`
}

// Hex converts the tone to a #rrggbb string for renderers that cannot
// interpret CSS colour functions.
func (t Tone) Hex() string {
	return hslHex(t.Hue, t.Saturation, t.Lightness)
}

// Radius holds the three corner radii in whole pixels.
type Radius struct {
	SM int `json:"sm" yaml:"sm"`
	MD int `json:"md" yaml:"md"`
	LG int `json:"lg" yaml:"lg"`
}

// Snapshot is the fully derived theme for one combination of controls.
// Snapshots are produced by Derive and are never modified afterwards.
type Snapshot struct {
	Hue              float64              `json:"hue" yaml:"hue"`
	Accent           map[AccentTone]Tone  `json:"accent" yaml:"accent"`
	Surface          map[SurfaceTone]Tone `json:"surface" yaml:"surface"`
	Text             map[TextTone]Tone    `json:"text" yaml:"text"`
	Radius           Radius               `json:"radius" yaml:"radius"`
	Shadow           string               `json:"shadow" yaml:"shadow"`
	AccentForeground string               `json:"accentForeground" yaml:"accent_foreground"`
	Dark             bool                 `json:"isDark" yaml:"is_dark"`
}
