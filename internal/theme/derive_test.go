package theme

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveDefaultControls(t *testing.T) {
	t.Parallel()

	snap := Derive(DefaultControls())

	assert.Equal(t, 232.0, snap.Hue)
	assert.Equal(t, 54.0, snap.Accent[Accent500].Lightness, "500 carries the base lightness unchanged")
	assert.Equal(t, 42.0, snap.Accent[Accent600].Lightness)
	assert.Equal(t, Radius{SM: 14, MD: 18, LG: 24}, snap.Radius)

	assert.Equal(t, "hsl(232 78% 42%)", snap.Accent[Accent600].Color)
	assert.Equal(t, "hsl(232 78% 54%)", snap.Accent[Accent500].Color)
	assert.Equal(t, "hsl(232 78% 64%)", snap.Accent[Accent400].Color)
	assert.Equal(t, "hsl(232 54% 88%)", snap.Accent[Accent100].Color)
	assert.Equal(t, "hsl(232 54% 97%)", snap.Accent[Accent50].Color, "50 clamps at 97")

	assert.Equal(t, "hsl(228 32% 87%)", snap.Surface[Surface0].Color)
	assert.Equal(t, "hsl(229 30% 83%)", snap.Surface[Surface100].Color)
	assert.Equal(t, "hsl(230 28% 79%)", snap.Surface[Surface200].Color)
	assert.Equal(t, "hsl(231 26% 75%)", snap.Surface[Surface300].Color)
	assert.Equal(t, "hsl(232 24% 51%)", snap.Surface[Surface950].Color)

	assert.Equal(t, "0 42px 88px -54px rgba(15, 23, 42, 0.5)", snap.Shadow)
	assert.Equal(t, "#ffffff", snap.AccentForeground)
	assert.False(t, snap.Dark)
}

func TestDeriveClampsAccentAndSurface(t *testing.T) {
	t.Parallel()

	snap := Derive(Controls{Hue: 0, Saturation: 90, Lightness: 70, Depth: 6, Radius: 28})

	assert.Equal(t, 95.0, snap.Accent[Accent100].Lightness, "70+34 clamps to 95")
	assert.Equal(t, 78.0, SurfaceBaseLightness(6, false))
	assert.Equal(t, 78.0, snap.Surface[Surface0].Lightness, "light surface 0 sits on the base")
	assert.Equal(t, "0 42px 88px -54px rgba(15, 23, 42, 0.62)", snap.Shadow)
	assert.Equal(t, Radius{SM: 24, MD: 28, LG: 34}, snap.Radius)
}

func TestDeriveDarkMode(t *testing.T) {
	t.Parallel()

	controls := DefaultControls()
	controls.Dark = true
	snap := Derive(controls)

	assert.Equal(t, 30.0, SurfaceBaseLightness(3, true))
	assert.Equal(t, "hsl(216 26% 36%)", snap.Surface[Surface0].Color)
	assert.Equal(t, "hsl(217 28% 32%)", snap.Surface[Surface100].Color)
	assert.Equal(t, "hsl(220 34% 6%)", snap.Surface[Surface950].Color, "950 floors at 6")
	assert.Equal(t, "hsl(215 92% 90%)", snap.Text[Text900].Color)
	assert.Equal(t, darkShadow, snap.Shadow)
	assert.Equal(t, "hsl(220 100% 96%)", snap.AccentForeground)
	assert.True(t, snap.Dark)
}

func TestDeriveToggleDarkOnlyTouchesNeutrals(t *testing.T) {
	t.Parallel()

	light := DefaultControls()
	dark := light
	dark.Dark = true

	l, d := Derive(light), Derive(dark)

	assert.NotEqual(t, l.AccentForeground, d.AccentForeground)
	assert.NotEqual(t, l.Shadow, d.Shadow)
	for _, tone := range TextOrder {
		assert.NotEqual(t, l.Text[tone].Color, d.Text[tone].Color, "text %s", tone)
	}
	if diff := cmp.Diff(l.Accent, d.Accent); diff != "" {
		t.Fatalf("accent ramp changed with dark mode (-light +dark):\n%s", diff)
	}
	assert.Equal(t, l.Radius, d.Radius)
}

func TestNormalizeHue(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   float64
		want float64
	}{
		{in: 0, want: 0},
		{in: 232, want: 232},
		{in: 360, want: 0},
		{in: 720, want: 0},
		{in: -10, want: 350},
		{in: -360, want: 0},
		{in: -725, want: 355},
		{in: 359.5, want: 359.5},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeHue(tc.in), "hue %v", tc.in)
	}

	a := Derive(Controls{Hue: -10, Saturation: 78, Lightness: 54, Depth: 3, Radius: 18})
	b := Derive(Controls{Hue: 350, Saturation: 78, Lightness: 54, Depth: 3, Radius: 18})
	assert.Equal(t, a.Hue, b.Hue)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("-10 and 350 should derive the same theme:\n%s", diff)
	}
}

func TestDeriveIsDeterministic(t *testing.T) {
	t.Parallel()

	for _, c := range controlGrid() {
		if diff := cmp.Diff(Derive(c), Derive(c)); diff != "" {
			t.Fatalf("Derive(%+v) not deterministic:\n%s", c, diff)
		}
	}
}

func TestDeriveKeepsEveryFieldInBounds(t *testing.T) {
	t.Parallel()

	for _, c := range controlGrid() {
		snap := Derive(c)

		require.GreaterOrEqual(t, snap.Hue, 0.0)
		require.Less(t, snap.Hue, 360.0)

		for _, step := range accentSteps {
			tone := snap.Accent[step.tone]
			require.GreaterOrEqual(t, tone.Lightness, step.lightness.min, "%+v accent %s", c, step.tone)
			require.LessOrEqual(t, tone.Lightness, step.lightness.max, "%+v accent %s", c, step.tone)
			bounds := accentSaturation
			if step.muted {
				bounds = mutedAccentSaturation
			}
			require.GreaterOrEqual(t, tone.Saturation, bounds.min)
			require.LessOrEqual(t, tone.Saturation, bounds.max)
		}

		floor, ceiling := lightNeutral.lightness.min, lightNeutral.lightness.max
		if c.Dark {
			floor, ceiling = darkNeutral.lightness.min, darkNeutral.lightness.max
		}
		for _, tone := range SurfaceOrder {
			s := snap.Surface[tone]
			require.GreaterOrEqual(t, s.Lightness, floor, "%+v surface %s", c, tone)
			require.LessOrEqual(t, s.Lightness, ceiling, "%+v surface %s", c, tone)
			require.GreaterOrEqual(t, s.Saturation, surfaceSaturation.min)
			require.LessOrEqual(t, s.Saturation, surfaceSaturation.max)
		}

		require.GreaterOrEqual(t, snap.Radius.SM, radiusMin-4)
		require.LessOrEqual(t, snap.Radius.LG, radiusMax+6)
		require.Len(t, snap.Text, len(TextOrder))
	}
}

func TestSurfaceBaseLightnessMonotonicInDepth(t *testing.T) {
	t.Parallel()

	for depth := 1.0; depth <= depthMax; depth++ {
		assert.Less(t, SurfaceBaseLightness(depth, false), SurfaceBaseLightness(depth-1, false),
			"light surfaces darken as depth grows (depth %v)", depth)
	}
	// Dark base reaches its ceiling of 32 at depth 3.5.
	for depth := 1.0; depth <= 3; depth++ {
		assert.Greater(t, SurfaceBaseLightness(depth, true), SurfaceBaseLightness(depth-1, true),
			"dark surfaces lighten as depth grows (depth %v)", depth)
	}
	assert.Equal(t, 32.0, SurfaceBaseLightness(6, true))
}

func TestDeriveClampsOutOfRangeInputs(t *testing.T) {
	t.Parallel()

	low := Derive(Controls{Hue: -1e6, Saturation: -50, Lightness: -50, Depth: -3, Radius: -100})
	assert.Equal(t, Radius{SM: 6, MD: 10, LG: 16}, low.Radius)
	assert.Equal(t, 28.0, low.Accent[Accent500].Lightness)
	assert.Equal(t, 32.0, low.Accent[Accent500].Saturation)
	assert.Equal(t, 12.0, low.Accent[Accent50].Saturation)

	high := Derive(Controls{Hue: 1e6, Saturation: 500, Lightness: 500, Depth: 40, Radius: 100, Dark: true})
	assert.Equal(t, Radius{SM: 24, MD: 28, LG: 34}, high.Radius)
	assert.Equal(t, 72.0, high.Accent[Accent500].Lightness)
	assert.Equal(t, 100.0, high.Accent[Accent600].Saturation)
	assert.Equal(t, 76.0, high.Accent[Accent100].Saturation)
}

func controlGrid() []Controls {
	var grid []Controls
	for _, hue := range []float64{-400, -10, 0, 180, 359, 725} {
		for _, sat := range []float64{-5, 24, 60, 100, 140} {
			for _, light := range []float64{0, 28, 50, 72, 100} {
				for _, depth := range []float64{-1, 0, 3, 6, 9} {
					for _, radius := range []float64{0, 10, 18.5, 28, 40} {
						for _, dark := range []bool{false, true} {
							grid = append(grid, Controls{
								Hue: hue, Saturation: sat, Lightness: light,
								Depth: depth, Radius: radius, Dark: dark,
							})
						}
					}
				}
			}
		}
	}
	return grid
}
