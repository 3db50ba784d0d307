package config

// BuiltinVersion is the schema version of the built-in presets.
const BuiltinVersion = "1.0"

// Builtin returns the presets used when no presets file exists. The first
// one, nova, matches the showcase defaults.
func Builtin() *File {
	return &File{
		Version: BuiltinVersion,
		Default: "nova",
		Presets: []Preset{
			{
				Name:        "nova",
				Description: "Indigo accent on cool light surfaces",
				Hue:         232,
				Saturation:  78,
				Lightness:   54,
				Depth:       3,
				Radius:      18,
			},
			{
				Name:        "midnight",
				Description: "Violet accent on deep dark surfaces",
				Hue:         262,
				Saturation:  70,
				Lightness:   62,
				Depth:       4,
				Radius:      22,
				Dark:        true,
			},
			{
				Name:        "ember",
				Description: "Warm orange accent with tight corners",
				Hue:         18,
				Saturation:  86,
				Lightness:   52,
				Depth:       2,
				Radius:      12,
			},
		},
	}
}
