package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Badge is a small accent-tinted label.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
}

// BadgeVariant specifies the visual style of a badge.
type BadgeVariant int

const (
	// BadgeVariantSubtle is the default: soft accent background.
	BadgeVariantSubtle BadgeVariant = iota
	BadgeVariantSolid
	BadgeVariantOutline
)

func (v BadgeVariant) String() string {
	switch v {
	case BadgeVariantSolid:
		return "solid"
	case BadgeVariantOutline:
		return "outline"
	default:
		return "subtle"
	}
}

// NewBadge creates a subtle badge.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
		variant:       BadgeVariantSubtle,
	}
}

func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

func (b *Badge) ViewWithContext(ctx RenderContext) string {
	return b.computeStyle(ctx.Theme).Render(b.text)
}

func (b *Badge) computeStyle(theme Theme) lipgloss.Style {
	style := b.ComputeStyle(theme)
	if theme.Variants == nil {
		return style
	}
	if strategy := theme.Variants.Get(b.variant); strategy != nil {
		return strategy.Apply(style, theme)
	}
	return style
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Badge) WithAppliers(appliers ...StyleFunc) *Badge {
	b.AddAppliers(appliers...)
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// Variant returns the badge variant.
func (b *Badge) Variant() BadgeVariant {
	return b.variant
}

// SolidBadge creates a badge on the full accent colour.
func SolidBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantSolid)
}

// OutlineBadge creates a bordered badge with accent text.
func OutlineBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantOutline)
}
