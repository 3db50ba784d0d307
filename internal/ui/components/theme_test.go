package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tokens "github.com/alexisbeaulieu97/spectrum/internal/theme"
)

func TestBorderForRadius(t *testing.T) {
	t.Parallel()

	assert.Equal(t, lipgloss.NormalBorder(), BorderForRadius(0))
	assert.Equal(t, lipgloss.NormalBorder(), BorderForRadius(11))
	assert.Equal(t, lipgloss.RoundedBorder(), BorderForRadius(12))
	assert.Equal(t, lipgloss.RoundedBorder(), BorderForRadius(34))
}

func TestThemeFromSnapshotResolvesSlots(t *testing.T) {
	t.Parallel()

	snap := tokens.Derive(tokens.DefaultControls())
	theme := ThemeFromSnapshot(snap)

	assert.Equal(t, lipgloss.Color(snap.Accent[tokens.Accent500].Hex()), theme.Palette.Accent.Base)
	assert.Equal(t, lipgloss.Color("#ffffff"), theme.Palette.Accent.OnBase)
	assert.Equal(t, lipgloss.Color(snap.Surface[tokens.Surface0].Hex()), theme.Palette.Surface.Base)
	assert.Equal(t, lipgloss.Color(snap.Text[tokens.Text900].Hex()), theme.Palette.Surface.OnBase)
	assert.Equal(t, lipgloss.Color(snap.Surface[tokens.Surface950].Hex()), theme.Palette.Shadow)
	assert.False(t, theme.Dark)
	require.NotNil(t, theme.Variants)
}

func TestThemeRadiusFollowsSnapshot(t *testing.T) {
	t.Parallel()

	sharp := ThemeFromSnapshot(tokens.Derive(tokens.Controls{Hue: 10, Saturation: 60, Lightness: 50, Radius: 10}))
	assert.Equal(t, lipgloss.NormalBorder(), sharp.Radius.Small, "10 - 4 = 6px")
	assert.Equal(t, lipgloss.NormalBorder(), sharp.Radius.Medium)
	assert.Equal(t, lipgloss.RoundedBorder(), sharp.Radius.Large, "10 + 6 = 16px")

	round := DefaultTheme()
	assert.Equal(t, lipgloss.RoundedBorder(), round.Radius.Small)
}

func TestDarkThemeUsesDarkForeground(t *testing.T) {
	t.Parallel()

	theme := DarkTheme()
	assert.True(t, theme.Dark)
	assert.Equal(t, lipgloss.Color(tokens.Hex("hsl(220 100% 96%)")), theme.Palette.Accent.OnBase)
	assert.NotEqual(t, LightTheme().Palette.Surface.Base, theme.Palette.Surface.Base)
}

func TestNormalizeFillsSpacingAndVariants(t *testing.T) {
	t.Parallel()

	theme := Theme{}.Normalize()
	assert.Equal(t, 2, PaddingValue(theme, SpacingSizeMedium))
	assert.Equal(t, 4, MarginValue(theme, SpacingSizeExtraLarge))
	assert.Equal(t, 2, PaddingValue(theme, SpacingSize(99)), "unknown sizes fall back to medium")
	require.NotNil(t, theme.Variants)
	assert.NotNil(t, theme.Variants.Get(ButtonVariantGhost))
	assert.NotNil(t, theme.Variants.Get(BadgeVariantOutline))
	assert.NotNil(t, theme.Variants.Get(ButtonSizeLarge))
}

func TestVariantRegistryKeysAreTyped(t *testing.T) {
	t.Parallel()

	registry := NewVariantRegistry()
	registry.Register(ButtonVariantPrimary, NewCompositeStrategy(PaddingX(SpacingSizeSmall)))

	assert.NotNil(t, registry.Get(ButtonVariantPrimary))
	assert.Nil(t, registry.Get(BadgeVariantSubtle), "same underlying value, different type")
}

func TestAddAppliersWrapsCustomStrategy(t *testing.T) {
	t.Parallel()

	var order []string
	base := NewBaseComponent()
	base.SetStrategy(strategyFunc(func(s lipgloss.Style, _ Theme) lipgloss.Style {
		order = append(order, "custom")
		return s
	}))
	base.AddAppliers(func(s lipgloss.Style, _ Theme) lipgloss.Style {
		order = append(order, "added")
		return s
	})

	base.ComputeStyle(DefaultTheme())
	assert.Equal(t, []string{"custom", "added"}, order)
}

type strategyFunc func(lipgloss.Style, Theme) lipgloss.Style

func (f strategyFunc) Apply(s lipgloss.Style, t Theme) lipgloss.Style { return f(s, t) }
