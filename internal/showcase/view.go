package showcase

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/spectrum/internal/ui"
	"github.com/alexisbeaulieu97/spectrum/internal/ui/components"
)

const (
	focusMarker    = "›"
	swatchesPerRow = 3
)

// View renders the current model state.
func (m Model) View() string {
	ctx := components.NewContext(m.theme)

	var body *components.Stack
	if m.width >= wideLayout {
		body = components.HStack(m.controlsPanel(), m.preview()).WithGap(2)
	} else {
		body = components.VStack(m.controlsPanel(), m.preview()).WithGap(1)
	}

	return components.VStack(
		m.header(),
		body,
		staticView(m.help.View(m.keys)),
	).WithGap(1).ViewWithContext(ctx)
}

func (m Model) header() ui.Renderable {
	mode := m.controls.Mode() + " mode"
	if m.preset != "" {
		mode = fmt.Sprintf("preset %s · %s", m.preset, mode)
	}
	return components.VStack(
		components.SectionHeader("Component showcase", "Adjust tokens and watch the UI respond instantly"),
		components.BodyText("Fine-tune Spectrum's color ramps, depth, and curvature. Every change updates live components so you can export ready-to-ship tokens."),
		components.MetaText(mode),
	)
}

func (m Model) controlsPanel() ui.Renderable {
	panel := components.NewPanel().WithTitle("Controls")
	panel.WithGap(1)

	for _, target := range sliderOrder {
		panel.Add(m.sliderRow(target))
	}

	dark := components.NewSwitch("Dark surface").
		WithChecked(m.controls.Dark).
		WithHideLabel(true)
	panel.Add(components.HStack(
		m.label(focusDark, "Dark surface"),
		dark,
	).WithGap(2))

	return panel
}

func (m Model) sliderRow(target focusTarget) ui.Renderable {
	s := sliders[target]
	reading := s.format(m.controls, m.projection.Snapshot)

	heading := m.label(target, s.label)
	pad := trackWidth + 2 - lipgloss.Width(s.label) - 2 - lipgloss.Width(reading)
	if pad < 1 {
		pad = 1
	}

	return components.VStack(
		components.HStack(heading, components.NewText(strings.Repeat(" ", pad)), components.EmphasisText(reading)),
		staticView("  "+m.track.ViewAs(s.ratio(m.controls))),
	)
}

// label prefixes a control name with the focus marker when it has focus.
func (m Model) label(target focusTarget, text string) *components.Text {
	if m.focus == target {
		return components.EmphasisText(focusMarker + " " + text).WithAppliers(
			components.Typography(components.TypographyVariantEmphasis),
			components.Foreground(components.PaletteAccent),
		)
	}
	return components.BodyText("  " + text)
}

func (m Model) preview() ui.Renderable {
	hero := components.HStack(
		components.VStack(
			components.NewBadge("Live Theme"),
			components.EmphasisText("Nova workspace"),
			components.MetaText("Components instantly match your palette."),
		),
		components.GhostButton("Export tokens").
			WithSize(components.ButtonSizeSmall).
			WithLeadingIcon("✦"),
	).WithGap(4)

	buttons := components.HStack(
		components.PrimaryButton("Primary").WithSize(components.ButtonSizeMedium),
		components.OutlineButton("Secondary"),
		components.GhostButton("Ghost"),
	).WithGap(2).WithCrossAlign(components.CrossCenter)

	email := components.NewInput("Team email").
		WithIcon("✉").
		WithPlaceholder(emailPlaceholder).
		WithFocused(m.focus == focusEmail)
	if m.focus == focusEmail {
		email.WithValue(m.email.View())
	} else {
		email.WithValue(m.email.Value())
	}
	invite := components.HStack(
		email,
		components.PrimaryButton("Invite").WithSize(components.ButtonSizeSmall),
	).WithGap(2).WithCrossAlign(components.CrossEnd)

	pulse := components.NewCard(
		components.BodyText("Monitor adoption across squads. Spectrum keeps your analytics surfaces cohesive while you iterate on tokens."),
		components.HStack(
			components.NewStat("Active teams", "128").WithDelta("+18% MoM"),
			components.NewStat("Focus time", "68%").WithDelta("+6 pts"),
			components.NewStat("Theme syncs", "42").WithDelta("This week"),
		).WithGap(1),
	).WithMeta("Overview").WithTitle("Engagement pulse")

	automation := components.NewCard(
		components.BodyText("Push fresh palettes into production via CI once changes are approved."),
		components.NewSwitch("Sync tokens nightly").
			WithChecked(m.automation).
			WithFocused(m.focus == focusAutomation),
	).WithMeta("Automation").WithTitle("Nightly token sync")

	snippet := components.NewNotification("Ready to copy").
		WithMessage("Paste this snippet into your global :root declaration.").
		WithCode(m.projection.Snippet)

	return components.PreviewFrame(
		hero,
		buttons,
		invite,
		pulse,
		automation,
		snippet,
		components.SwatchGrid(m.projection.Swatches(), swatchesPerRow),
	)
}

// staticView adapts pre-rendered output, such as bubbles widgets, to a Renderable.
type staticView string

func (s staticView) View() string {
	return string(s)
}
