package theme

import (
	"fmt"
	"math"
)

// Input bounds applied before any tone is derived.
const (
	saturationMin = 24
	saturationMax = 100
	lightnessMin  = 28
	lightnessMax  = 72
	depthMin      = 0
	depthMax      = 6
	radiusMin     = 10
	radiusMax     = 28
)

type span struct {
	min float64
	max float64
}

func (s span) clamp(v float64) float64 {
	return clamp(v, s.min, s.max)
}

type accentStep struct {
	tone      AccentTone
	offset    float64
	lightness span
	muted     bool
}

// accentSteps is ordered as AccentOrder. The 500 tone carries the base
// lightness unchanged; its span is the input bound so the clamp is a no-op.
var accentSteps = []accentStep{
	{tone: Accent600, offset: -12, lightness: span{8, 62}},
	{tone: Accent500, offset: 0, lightness: span{lightnessMin, lightnessMax}},
	{tone: Accent400, offset: 10, lightness: span{18, 86}},
	{tone: Accent100, offset: 34, lightness: span{24, 95}, muted: true},
	{tone: Accent50, offset: 44, lightness: span{30, 97}, muted: true},
}

var (
	accentSaturation      = span{32, 100}
	mutedAccentSaturation = span{12, 80}
)

const mutedSaturationDrop = 24

type surfaceStep struct {
	tone        SurfaceTone
	darkOffset  float64
	lightOffset float64
}

// surfaceSteps is ordered as SurfaceOrder; the slice index is the tone ordinal.
var surfaceSteps = []surfaceStep{
	{tone: Surface0, darkOffset: 6, lightOffset: 0},
	{tone: Surface100, darkOffset: 2, lightOffset: -4},
	{tone: Surface200, darkOffset: -2, lightOffset: -8},
	{tone: Surface300, darkOffset: -6, lightOffset: -12},
	{tone: Surface950, darkOffset: -28, lightOffset: -36},
}

type neutralMode struct {
	hue        float64
	saturation float64
	// satStep is added per ordinal; negative in light mode.
	satStep   float64
	lightness span
	base      func(depth float64) float64
}

var (
	darkNeutral = neutralMode{
		hue:        216,
		saturation: 26,
		satStep:    2,
		lightness:  span{6, 44},
		base: func(depth float64) float64 {
			return clamp(18+depth*4, 12, 32)
		},
	}
	lightNeutral = neutralMode{
		hue:        228,
		saturation: 32,
		satStep:    -2,
		lightness:  span{36, 98},
		base: func(depth float64) float64 {
			return clamp(96-depth*3, 60, 98)
		},
	}
	surfaceSaturation = span{10, 42}
)

type fixedTone struct {
	tone      TextTone
	hue       float64
	sat       float64
	lightness float64
}

var (
	darkText = []fixedTone{
		{Text900, 215, 92, 90},
		{Text700, 215, 74, 78},
		{Text500, 215, 40, 68},
	}
	lightText = []fixedTone{
		{Text900, 224, 40, 14},
		{Text700, 224, 34, 26},
		{Text500, 222, 24, 44},
	}
)

const (
	darkShadow            = "0 36px 72px -48px rgba(15, 23, 42, 0.68)"
	lightShadowFormat     = "0 42px 88px -54px rgba(15, 23, 42, %s)"
	lightShadowAlpha      = 0.38
	lightShadowAlphaStep  = 0.04
	darkAccentForeground  = "hsl(220 100% 96%)"
	lightAccentForeground = "#ffffff"
)

// Derive computes the theme snapshot for the given controls. It is pure and
// total: out-of-range inputs are clamped, never rejected.
func Derive(c Controls) Snapshot {
	hue := NormalizeHue(c.Hue)
	saturation := clamp(c.Saturation, saturationMin, saturationMax)
	base := clamp(c.Lightness, lightnessMin, lightnessMax)
	depth := clamp(c.Depth, depthMin, depthMax)
	radius := clamp(c.Radius, radiusMin, radiusMax)

	accent := make(map[AccentTone]Tone, len(accentSteps))
	for _, step := range accentSteps {
		lightness := step.lightness.clamp(base + step.offset)
		sat := accentSaturation.clamp(saturation)
		if step.muted {
			sat = mutedAccentSaturation.clamp(saturation - mutedSaturationDrop)
		}
		accent[step.tone] = newTone(hue, sat, lightness)
	}

	mode := lightNeutral
	if c.Dark {
		mode = darkNeutral
	}
	surfaceBase := mode.base(depth)

	surface := make(map[SurfaceTone]Tone, len(surfaceSteps))
	for index, step := range surfaceSteps {
		offset := step.lightOffset
		if c.Dark {
			offset = step.darkOffset
		}
		ordinal := float64(index)
		surface[step.tone] = newTone(
			mode.hue+ordinal,
			surfaceSaturation.clamp(mode.saturation+ordinal*mode.satStep),
			mode.lightness.clamp(surfaceBase+offset),
		)
	}

	table := lightText
	if c.Dark {
		table = darkText
	}
	text := make(map[TextTone]Tone, len(table))
	for _, entry := range table {
		text[entry.tone] = newTone(entry.hue, entry.sat, entry.lightness)
	}

	shadow := darkShadow
	foreground := darkAccentForeground
	if !c.Dark {
		alpha := round(lightShadowAlpha+depth*lightShadowAlphaStep, 2)
		shadow = fmt.Sprintf(lightShadowFormat, formatNumber(alpha))
		foreground = lightAccentForeground
	}

	return Snapshot{
		Hue:     hue,
		Accent:  accent,
		Surface: surface,
		Text:    text,
		Radius: Radius{
			SM: int(math.Round(radius - 4)),
			MD: int(math.Round(radius)),
			LG: int(math.Round(radius + 6)),
		},
		Shadow:           shadow,
		AccentForeground: foreground,
		Dark:             c.Dark,
	}
}

// SurfaceBaseLightness returns the lightness every surface tone is offset
// from, before the per-tone offsets and the mode floor/ceiling are applied.
func SurfaceBaseLightness(depth float64, dark bool) float64 {
	depth = clamp(depth, depthMin, depthMax)
	if dark {
		return darkNeutral.base(depth)
	}
	return lightNeutral.base(depth)
}

// NormalizeHue wraps any hue, including negative ones, into [0, 360).
func NormalizeHue(hue float64) float64 {
	h := math.Mod(math.Mod(hue, 360)+360, 360)
	if h == 360 {
		return 0
	}
	return h
}

func newTone(hue, saturation, lightness float64) Tone {
	return Tone{
		Color:      HSL(hue, saturation, lightness),
		Hue:        hue,
		Saturation: saturation,
		Lightness:  lightness,
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
