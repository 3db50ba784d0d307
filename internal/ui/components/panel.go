package components

import (
	"github.com/alexisbeaulieu97/spectrum/internal/ui"
)

// Panel groups related content under a header and a divider. It is quieter
// than a Card: no border unless one is applied.
type Panel struct {
	*Container
	header ui.Renderable
	body   []ui.Renderable
}

// NewPanel creates a new panel on the raised surface.
func NewPanel(children ...ui.Renderable) *Panel {
	container := NewContainer(children...).
		WithPadding(SymmetricSpacing(1, 2)).
		WithAppliers(Background(PaletteRaised))

	return &Panel{
		Container: container,
		body:      children,
	}
}

// WithHeader sets the header; calling it again replaces the previous one.
func (p *Panel) WithHeader(header ui.Renderable) *Panel {
	p.header = header
	p.rebuild()
	return p
}

// WithTitle is a convenience method to add a text header.
func (p *Panel) WithTitle(title string) *Panel {
	return p.WithHeader(NewHeader(title).WithAppliers(Typography(TypographyVariantTitle)))
}

// Add appends body children below the header.
func (p *Panel) Add(children ...ui.Renderable) *Panel {
	p.body = append(p.body, children...)
	p.rebuild()
	return p
}

func (p *Panel) rebuild() {
	children := make([]ui.Renderable, 0, len(p.body)+2)
	if p.header != nil {
		children = append(children, p.header, HorizontalDivider())
	}
	children = append(children, p.body...)
	p.SetChildren(children)
}
