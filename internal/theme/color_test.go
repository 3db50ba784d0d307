package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHSLFormatting(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hsl(232 78% 54%)", HSL(232, 78, 54))
	assert.Equal(t, "hsl(10.5 33.3% 0%)", HSL(10.46, 33.333, -0.01))
}

func TestParseColorForms(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"#ffffff":             "#ffffff",
		"#FFF":                "#ffffff",
		"white":               "#ffffff",
		"hsl(0 100% 50%)":     "#ff0000",
		"hsl(120, 100%, 25%)": "#008000",
		"hsl(-120 100% 50%)":  "#0000ff",
	}

	for in, want := range cases {
		c, err := ParseColor(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, c.Hex(), in)
	}

	_, err := ParseColor("rgba(1, 2, 3, 0.5)")
	require.Error(t, err)
	_, err = ParseColor("hsl(1 2%)")
	require.Error(t, err)
}

func TestHexFallsBackToInput(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#ff0000", Hex("hsl(0 100% 50%)"))
	assert.Equal(t, "not-a-colour", Hex("not-a-colour"))
}

func TestToneHexMatchesColorString(t *testing.T) {
	t.Parallel()

	snap := Derive(DefaultControls())
	for _, tone := range AccentOrder {
		assert.Equal(t, Hex(snap.Accent[tone].Color), snap.Accent[tone].Hex(), "accent %s", tone)
	}
}
