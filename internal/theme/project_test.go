package theme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultSnippet = `:root {
  --accent-600: hsl(232 78% 42%);
  --accent-500: hsl(232 78% 54%);
  --accent-400: hsl(232 78% 64%);
  --accent-100: hsl(232 54% 88%);
  --surface-0: hsl(228 32% 87%);
  --surface-200: hsl(230 28% 79%);
  --text-900: hsl(224 40% 14%);
  --shadow-lg: 0 42px 88px -54px rgba(15, 23, 42, 0.5);
  --radius-lg: 24px;
}`

func TestSnippetMatchesDefaultTheme(t *testing.T) {
	t.Parallel()

	assert.Equal(t, defaultSnippet, Snippet(Derive(DefaultControls())))
}

func TestVarsCoversFixedTokenNames(t *testing.T) {
	t.Parallel()

	snap := Derive(DefaultControls())
	vars := Vars(snap)

	require.Len(t, vars, len(StyleVarNames))
	for _, name := range StyleVarNames {
		assert.Contains(t, vars, name)
	}
	assert.NotContains(t, vars, "surface-950", "950 stays out of the mapping")

	assert.Equal(t, "14px", vars["radius-sm"])
	assert.Equal(t, "18px", vars["radius-md"])
	assert.Equal(t, "24px", vars["radius-lg"])
	assert.Equal(t, snap.Shadow, vars["shadow-lg"])
	assert.Equal(t, snap.AccentForeground, vars["accent-foreground"])
	assert.Equal(t, snap.Accent[Accent50].Color, vars["accent-50"])
	assert.Equal(t, snap.Text[Text500].Color, vars["text-500"])
}

func TestStyleVarsCSSIsOrdered(t *testing.T) {
	t.Parallel()

	vars := Vars(Derive(DefaultControls()))
	vars["brand-extra"] = "red"

	css := vars.CSS()
	lines := strings.Split(css, "\n")
	require.Equal(t, ":root {", lines[0])
	require.Equal(t, "}", lines[len(lines)-1])
	require.Len(t, lines, len(StyleVarNames)+3)
	assert.Equal(t, "  --accent-600: hsl(232 78% 42%);", lines[1])
	assert.Equal(t, "  --radius-lg: 24px;", lines[len(lines)-3])
	assert.Equal(t, "  --brand-extra: red;", lines[len(lines)-2])
}

func TestAccentSwatchesUseLightnessThreshold(t *testing.T) {
	t.Parallel()

	swatches := AccentSwatches(Derive(DefaultControls()))

	require.Len(t, swatches, 5)
	labels := make([]string, 0, len(swatches))
	for _, s := range swatches {
		labels = append(labels, s.Label)
	}
	assert.Equal(t, []string{"Accent 600", "Accent 500", "Accent 400", "Accent 100", "Accent 50"}, labels)

	// 42 and 54 sit below the threshold; 64, 88 and 97 do not.
	assert.Equal(t, LightSwatchText, swatches[0].TextColor)
	assert.Equal(t, LightSwatchText, swatches[1].TextColor)
	assert.Equal(t, DarkSwatchText, swatches[2].TextColor)
	assert.Equal(t, DarkSwatchText, swatches[3].TextColor)
	assert.Equal(t, DarkSwatchText, swatches[4].TextColor)
	assert.Equal(t, "hsl(232 78% 42%)", swatches[0].Value)
}

func TestReadableOnBoundary(t *testing.T) {
	t.Parallel()

	assert.Equal(t, LightSwatchText, ReadableOn(54.9))
	assert.Equal(t, DarkSwatchText, ReadableOn(55))
}

func TestSurfaceSwatchesFollowMode(t *testing.T) {
	t.Parallel()

	light := SurfaceSwatches(Derive(DefaultControls()))
	require.Len(t, light, 4)
	assert.Equal(t, "Surface 0", light[0].Label)
	assert.Equal(t, "Surface 300", light[3].Label)
	for _, s := range light {
		assert.Equal(t, DarkSwatchText, s.TextColor)
	}

	controls := DefaultControls()
	controls.Dark = true
	dark := SurfaceSwatches(Derive(controls))
	for _, s := range dark {
		assert.Equal(t, "white", s.TextColor)
	}
}

func TestProjectBundlesEveryArtifact(t *testing.T) {
	t.Parallel()

	snap := Derive(DefaultControls())
	p := Project(snap)

	assert.Equal(t, Vars(snap), p.Vars)
	assert.Equal(t, Snippet(snap), p.Snippet)
	require.Len(t, p.Swatches(), 9)
	assert.Equal(t, "Accent 600", p.Swatches()[0].Label)
	assert.Equal(t, "Surface 300", p.Swatches()[8].Label)
}
