package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ButtonVariant specifies the visual style of a button.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantOutline
	ButtonVariantGhost
)

func (v ButtonVariant) String() string {
	switch v {
	case ButtonVariantOutline:
		return "outline"
	case ButtonVariantGhost:
		return "ghost"
	default:
		return "primary"
	}
}

// ButtonSize controls horizontal (and for large, vertical) padding.
type ButtonSize int

const (
	ButtonSizeMedium ButtonSize = iota
	ButtonSizeSmall
	ButtonSizeLarge
)

func (s ButtonSize) String() string {
	switch s {
	case ButtonSizeSmall:
		return "sm"
	case ButtonSizeLarge:
		return "lg"
	default:
		return "md"
	}
}

// Button is a visual-only button.
type Button struct {
	BaseComponent
	label       string
	leadingIcon string
	variant     ButtonVariant
	size        ButtonSize
	disabled    bool
	active      bool
}

// NewButton creates a medium primary button.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       ButtonVariantPrimary,
		size:          ButtonSizeMedium,
	}
}

func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button; a leading icon is separated from the
// label by one space.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	content := b.label
	if b.leadingIcon != "" {
		content = b.leadingIcon + " " + b.label
	}
	return b.computeStyle(ctx.Theme).Render(content)
}

func (b *Button) computeStyle(theme Theme) lipgloss.Style {
	style := b.ComputeStyle(theme)

	if theme.Variants != nil {
		if strategy := theme.Variants.Get(b.variant); strategy != nil {
			style = strategy.Apply(style, theme)
		}
		if strategy := theme.Variants.Get(b.size); strategy != nil {
			style = strategy.Apply(style, theme)
		}
	}

	if b.disabled {
		style = style.Faint(true)
	}
	if b.active {
		style = style.Bold(true).Underline(true)
	}
	return style
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithSize sets the button size.
func (b *Button) WithSize(size ButtonSize) *Button {
	b.size = size
	return b
}

// WithLeadingIcon sets a glyph drawn before the label.
func (b *Button) WithLeadingIcon(icon string) *Button {
	b.leadingIcon = icon
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithActive marks the button as focused.
func (b *Button) WithActive(active bool) *Button {
	b.active = active
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// IsDisabled reports whether the button is disabled.
func (b *Button) IsDisabled() bool {
	return b.disabled
}

// PrimaryButton creates a primary button.
func PrimaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantPrimary)
}

// OutlineButton creates an outline button.
func OutlineButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantOutline)
}

// GhostButton creates a ghost button.
func GhostButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantGhost)
}
