package theme

// Controls holds the six scalar inputs of the showcase. Values outside the
// documented ranges are accepted; Derive clamps them.
type Controls struct {
	Hue        float64 `json:"hue" yaml:"hue"`
	Saturation float64 `json:"saturation" yaml:"saturation"`
	Lightness  float64 `json:"lightness" yaml:"lightness"`
	Depth      float64 `json:"depth" yaml:"depth"`
	Radius     float64 `json:"radius" yaml:"radius"`
	Dark       bool    `json:"dark" yaml:"dark"`
}

// DefaultControls returns the values the showcase starts with.
func DefaultControls() Controls {
	return Controls{
		Hue:        232,
		Saturation: 78,
		Lightness:  54,
		Depth:      3,
		Radius:     18,
		Dark:       false,
	}
}

// Mode reports "dark" or "light".
func (c Controls) Mode() string {
	if c.Dark {
		return "dark"
	}
	return "light"
}
