package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/spectrum/internal/ui"
)

// Card is a surface with a large-radius border, an optional title and a meta
// line under it.
type Card struct {
	*Container
	title string
	meta  string
	body  []ui.Renderable
}

// NewCard creates a new card with default card styling.
func NewCard(children ...ui.Renderable) *Card {
	container := NewContainer(children...).
		WithPadding(SymmetricSpacing(0, 1)).
		WithGap(1)
	container.WithAppliers(CardBaseStyle()...)

	return &Card{
		Container: container,
		body:      children,
	}
}

// WithTitle sets the heading shown above the body.
func (c *Card) WithTitle(title string) *Card {
	c.title = title
	c.rebuild()
	return c
}

// WithMeta sets the muted line shown under the title.
func (c *Card) WithMeta(meta string) *Card {
	c.meta = meta
	c.rebuild()
	return c
}

// Add appends body children.
func (c *Card) Add(children ...ui.Renderable) *Card {
	c.body = append(c.body, children...)
	c.rebuild()
	return c
}

// Title returns the card title.
func (c *Card) Title() string {
	return c.title
}

// Meta returns the card meta line.
func (c *Card) Meta() string {
	return c.meta
}

func (c *Card) rebuild() {
	children := make([]ui.Renderable, 0, len(c.body)+1)
	if c.title != "" || c.meta != "" {
		header := NewHeader(c.title).WithAppliers(Typography(TypographyVariantTitle))
		if c.meta != "" {
			header.WithSubtitle(c.meta)
		}
		children = append(children, header)
	}
	children = append(children, c.body...)
	c.SetChildren(children)
}

// PreviewFrame wraps the showcase canvas. Its outer border takes the deepest
// surface tone, standing in for the CSS shadow.
func PreviewFrame(children ...ui.Renderable) *Container {
	return NewContainer(children...).
		WithPadding(SymmetricSpacing(1, 2)).
		WithGap(1).
		WithAppliers(PreviewCanvasStyle()...)
}

// ShadowColor returns the colour used for the preview frame border.
func ShadowColor(theme Theme) lipgloss.Color {
	return theme.Palette.Shadow
}
