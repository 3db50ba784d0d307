package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tokens "github.com/alexisbeaulieu97/spectrum/internal/theme"
	"github.com/alexisbeaulieu97/spectrum/internal/ui"
)

func TestBadgeVariants(t *testing.T) {
	t.Parallel()

	assert.Equal(t, BadgeVariantSubtle, NewBadge("New").Variant())
	assert.Equal(t, "solid", SolidBadge("x").Variant().String())

	outline := OutlineBadge("Beta").View()
	assert.Contains(t, outline, "Beta")
	assert.Equal(t, 3, lipgloss.Height(outline), "outline badges carry a border")

	subtle := NewBadge("Beta").View()
	assert.Equal(t, 1, lipgloss.Height(subtle))
	assert.Equal(t, len("Beta")+2, lipgloss.Width(subtle), "subtle badges pad one cell per side")
}

func TestButtonSizesAndIcon(t *testing.T) {
	t.Parallel()

	small := PrimaryButton("Save").WithSize(ButtonSizeSmall).View()
	medium := PrimaryButton("Save").View()
	large := PrimaryButton("Save").WithSize(ButtonSizeLarge).View()

	assert.Less(t, lipgloss.Width(small), lipgloss.Width(medium))
	assert.Less(t, lipgloss.Width(medium), lipgloss.Width(large))
	assert.Equal(t, 3, lipgloss.Height(large), "large buttons add vertical padding")

	withIcon := GhostButton("Invite").WithLeadingIcon("+").View()
	assert.Contains(t, withIcon, "+ Invite")

	assert.Equal(t, "md", ButtonSizeMedium.String())
	assert.Equal(t, "outline", ButtonVariantOutline.String())
	assert.True(t, NewButton("x").WithDisabled(true).IsDisabled())
}

func TestCardRendersTitleMetaAndBody(t *testing.T) {
	t.Parallel()

	card := NewCard(NewText("Body copy")).WithTitle("Workspace").WithMeta("Updated today")
	view := card.View()

	assert.Contains(t, view, "Workspace")
	assert.Contains(t, view, "Updated today")
	assert.Contains(t, view, "Body copy")
	assert.Less(t, strings.Index(view, "Workspace"), strings.Index(view, "Body copy"))
	assert.Equal(t, "Workspace", card.Title())
	assert.Equal(t, "Updated today", card.Meta())
}

func TestCardBorderFollowsRadius(t *testing.T) {
	t.Parallel()

	rounded := NewCard(NewText("x")).ViewWithContext(NewContext(DefaultTheme()))
	assert.Contains(t, rounded, lipgloss.RoundedBorder().TopLeft)

	sharpTheme := DefaultTheme()
	sharpTheme.Radius.Large = BorderForRadius(8)
	sharp := NewCard(NewText("x")).ViewWithContext(NewContext(sharpTheme))
	assert.Contains(t, sharp, lipgloss.NormalBorder().TopLeft)
}

func TestInputStates(t *testing.T) {
	t.Parallel()

	empty := NewInput("Email").View()
	assert.Contains(t, empty, "Email")
	assert.Contains(t, empty, DefaultPlaceholder)
	assert.NotContains(t, empty, requiredMarker)

	filled := NewInput("Email").
		WithValue("team@spectrum.dev").
		WithRequired(true).
		WithHint("We never share it").
		WithIcon("@").
		View()
	assert.Contains(t, filled, "Email *")
	assert.Contains(t, filled, "@ team@spectrum.dev")
	assert.Contains(t, filled, "We never share it")
	assert.NotContains(t, filled, DefaultPlaceholder)

	lines := strings.Split(filled, "\n")
	assert.Len(t, lines, 5, "label, three field rows, hint")
}

func TestInputShrinksToContext(t *testing.T) {
	t.Parallel()

	ctx := DefaultContext().WithConstraints(WithMaxWidth(20))
	view := NewInput("Name").ViewWithContext(ctx)
	assert.LessOrEqual(t, lipgloss.Width(view), 20)
}

func TestSwitchTrack(t *testing.T) {
	t.Parallel()

	on := NewSwitch("Notifications").WithChecked(true).View()
	off := NewSwitch("Notifications").View()

	assert.True(t, strings.HasPrefix(on, "   ●"))
	assert.True(t, strings.HasPrefix(off, " ●  "))
	assert.Contains(t, on, "Notifications")

	hidden := NewSwitch("Dark").WithHideLabel(true)
	assert.NotContains(t, hidden.View(), "Dark")
	assert.Equal(t, "Dark", hidden.Label())
}

func TestSwatchGrid(t *testing.T) {
	t.Parallel()

	swatches := tokens.AccentSwatches(tokens.Derive(tokens.DefaultControls()))
	grid := SwatchGrid(swatches, 2)
	require.Len(t, grid.Children(), 3)

	view := grid.View()
	for _, s := range swatches {
		assert.Contains(t, view, s.Label)
		assert.Contains(t, view, s.Value)
	}
}

func TestNotificationIncludesCode(t *testing.T) {
	t.Parallel()

	view := NewNotification("Theme exported").
		WithMessage("Paste this into your stylesheet.").
		WithCode(":root {\n  --radius-lg: 24px;\n}").
		View()

	assert.Contains(t, view, "◆ Theme exported")
	assert.Contains(t, view, "--radius-lg: 24px;")

	plain := NewNotification("Saved").WithIcon("").View()
	assert.NotContains(t, plain, defaultNotificationIcon)
}

func TestStatAndPanel(t *testing.T) {
	t.Parallel()

	stat := NewStat("Conversion", "4.8%").WithDelta("+0.6 this week")
	view := stat.View()
	assert.Contains(t, view, "Conversion")
	assert.Contains(t, view, "+0.6 this week")

	panel := NewPanel(NewText("body")).WithTitle("Controls")
	panel.WithTitle("Tokens")
	require.Len(t, panel.Children(), 3, "header replaced, not stacked")
	out := panel.View()
	assert.Contains(t, out, "Tokens")
	assert.NotContains(t, out, "Controls")
}

func TestStackGapAndEmptyChildren(t *testing.T) {
	t.Parallel()

	row := HStack(NewText("a"), nil, NewText(""), NewText("b")).WithGap(2)
	assert.Equal(t, "a  b", row.View())

	col := VStack(NewText("a"), NewText("b")).WithGap(1)
	assert.Equal(t, "a\n \nb", col.View())
}

func TestRenderFallsBackToView(t *testing.T) {
	t.Parallel()

	var r ui.Renderable = plain("raw")
	assert.Equal(t, "raw", Render(r, DefaultContext()))
	assert.Equal(t, "", Render(nil, DefaultContext()))
}

func TestDividerWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, defaultDividerWidth, lipgloss.Width(NewDivider().View()))
	assert.Equal(t, 10, lipgloss.Width(NewDivider().WithWidth(10).View()))

	ctx := DefaultContext().WithConstraints(WithMaxWidth(12))
	assert.Equal(t, 12, lipgloss.Width(DottedDivider().ViewWithContext(ctx)))
}

func TestPreviewFrameUsesShadowTone(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	assert.Equal(t, theme.Palette.Shadow, ShadowColor(theme))
	view := PreviewFrame(NewText("canvas")).ViewWithContext(NewContext(theme))
	assert.Contains(t, view, "canvas")
}

type plain string

func (p plain) View() string { return string(p) }
