package theme

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// HSL formats a CSS Color 4 hsl() value with every component rounded to one
// decimal and trailing zeros dropped, e.g. "hsl(232 78% 54%)".
func HSL(hue, saturation, lightness float64) string {
	return fmt.Sprintf("hsl(%s %s%% %s%%)",
		formatNumber(round(hue, 1)),
		formatNumber(round(saturation, 1)),
		formatNumber(round(lightness, 1)),
	)
}

var namedColors = map[string]string{
	"white": "#ffffff",
	"black": "#000000",
}

// ParseColor understands the colour forms the deriver emits: #rgb/#rrggbb,
// hsl(H S% L%) and the named colours used by swatches.
func ParseColor(value string) (colorful.Color, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if hex, ok := namedColors[v]; ok {
		v = hex
	}

	switch {
	case strings.HasPrefix(v, "#"):
		if len(v) == 4 {
			v = "#" + strings.Repeat(v[1:2], 2) + strings.Repeat(v[2:3], 2) + strings.Repeat(v[3:4], 2)
		}
		return colorful.Hex(v)
	case strings.HasPrefix(v, "hsl(") && strings.HasSuffix(v, ")"):
		body := strings.TrimSuffix(strings.TrimPrefix(v, "hsl("), ")")
		body = strings.ReplaceAll(body, ",", " ")
		fields := strings.Fields(body)
		if len(fields) != 3 {
			return colorful.Color{}, fmt.Errorf("hsl colour %q: want 3 components, got %d", value, len(fields))
		}
		var parts [3]float64
		for i, field := range fields {
			n, err := strconv.ParseFloat(strings.TrimSuffix(field, "%"), 64)
			if err != nil {
				return colorful.Color{}, fmt.Errorf("hsl colour %q: %w", value, err)
			}
			parts[i] = n
		}
		return colorful.Hsl(NormalizeHue(parts[0]), parts[1]/100, parts[2]/100).Clamped(), nil
	default:
		return colorful.Color{}, fmt.Errorf("unsupported colour %q", value)
	}
}

// Hex converts any colour accepted by ParseColor to #rrggbb. Unparseable
// input is returned unchanged so callers can pass it straight to a renderer.
func Hex(value string) string {
	c, err := ParseColor(value)
	if err != nil {
		return value
	}
	return c.Hex()
}

func hslHex(hue, saturation, lightness float64) string {
	return colorful.Hsl(NormalizeHue(hue), saturation/100, lightness/100).Clamped().Hex()
}

func round(v float64, precision int) float64 {
	scale := math.Pow(10, float64(precision))
	return math.Round(v*scale) / scale
}

func formatNumber(v float64) string {
	if v == 0 {
		// avoid "-0"
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
