package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Header renders a title with an optional subtitle underneath.
type Header struct {
	BaseComponent
	title    string
	subtitle string
}

// NewHeader creates a new header with the given title.
func NewHeader(title string) *Header {
	return &Header{
		BaseComponent: NewBaseComponent(),
		title:         title,
	}
}

func (h *Header) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the header. The subtitle uses the theme's meta
// typography rather than the header's own appliers.
func (h *Header) ViewWithContext(ctx RenderContext) string {
	style := h.ComputeStyle(ctx.Theme)
	if h.subtitle == "" {
		return style.Render(h.title)
	}

	lines := []string{}
	if h.title != "" {
		lines = append(lines, style.Render(h.title))
	}
	lines = append(lines, TypographyStyle(ctx.Theme, TypographyVariantMeta).Render(h.subtitle))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// WithAppliers applies theme-based style modifiers.
func (h *Header) WithAppliers(appliers ...StyleFunc) *Header {
	h.SetAppliers(appliers...)
	return h
}

// WithSubtitle adds a subtitle to the header.
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.subtitle = subtitle
	return h
}

// Title returns the header title.
func (h *Header) Title() string {
	return h.title
}

// Subtitle returns the header subtitle.
func (h *Header) Subtitle() string {
	return h.subtitle
}

// SectionHeader is a kicker line followed by a title, as used above each
// group of previews.
func SectionHeader(kicker, title string) *Stack {
	return VStack(
		NewText(kicker).WithAppliers(Typography(TypographyVariantKicker)),
		NewHeader(title).WithAppliers(Typography(TypographyVariantTitle)),
	)
}
