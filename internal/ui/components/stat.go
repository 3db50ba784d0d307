package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Stat shows a metric: a muted label, a large value and an optional delta.
type Stat struct {
	BaseComponent
	label string
	value string
	delta string
}

// NewStat creates a stat tile.
func NewStat(label, value string) *Stat {
	return &Stat{
		BaseComponent: NewBaseComponent(),
		label:         label,
		value:         value,
	}
}

func (s *Stat) View() string {
	return s.ViewWithContext(DefaultContext())
}

func (s *Stat) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	lines := []string{
		TypographyStyle(theme, TypographyVariantMeta).Render(s.label),
		TypographyStyle(theme, TypographyVariantTitle).Foreground(theme.Palette.Accent.Muted).Render(s.value),
	}
	if s.delta != "" {
		lines = append(lines, TypographyStyle(theme, TypographyVariantBody).Render(s.delta))
	}

	style := s.ComputeStyle(theme).
		Inherit(lipgloss.NewStyle().
			Background(theme.Palette.Raised.Base).
			Border(theme.Radius.Medium).
			BorderForeground(theme.Palette.Sunken.Muted).
			Padding(0, 1))
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// WithDelta sets the change line under the value.
func (s *Stat) WithDelta(delta string) *Stat {
	s.delta = delta
	return s
}

// Value returns the displayed value.
func (s *Stat) Value() string {
	return s.value
}
