package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/spectrum/internal/ui"
)

// Container is a box holding children with optional border, padding and margin.
// Card and Panel build on it.
type Container struct {
	BaseComponent
	children    []ui.Renderable
	layout      *Stack
	border      lipgloss.Border
	borderColor lipgloss.TerminalColor
	padding     Spacing
	margin      Spacing
	width       int
}

// NewContainer creates a new container with default settings.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		children:      children,
		layout:        VStack(children...),
	}
}

func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the layout and wraps it in the container box.
// An empty container still draws its border and padding.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	style := c.ComputeStyle(ctx.Theme)

	if c.border.Top != "" {
		style = style.BorderStyle(c.border)
		if c.borderColor != nil {
			style = style.BorderForeground(c.borderColor)
		}
	}
	if !c.padding.IsZero() {
		if c.padding.symmetric() {
			style = style.Padding(c.padding.Top, c.padding.Left)
		} else {
			style = style.Padding(c.padding.Top, c.padding.Right, c.padding.Bottom, c.padding.Left)
		}
	}
	if !c.margin.IsZero() {
		if c.margin.symmetric() {
			style = style.Margin(c.margin.Top, c.margin.Left)
		} else {
			style = style.Margin(c.margin.Top, c.margin.Right, c.margin.Bottom, c.margin.Left)
		}
	}
	if c.width > 0 {
		style = style.Width(c.width)
	}

	var content string
	if len(c.children) > 0 {
		inner := ctx
		if c.width > 0 {
			inner = ctx.WithConstraints(WithMaxWidth(c.width - style.GetHorizontalPadding()))
		}
		content = c.layout.ViewWithContext(inner)
	}

	return style.Render(content)
}

// WithBorder sets the border style.
func (c *Container) WithBorder(border lipgloss.Border) *Container {
	c.border = border
	return c
}

// WithBorderColor sets the border colour, overriding any applier.
func (c *Container) WithBorderColor(color lipgloss.TerminalColor) *Container {
	c.borderColor = color
	return c
}

// WithPadding sets the padding.
func (c *Container) WithPadding(padding Spacing) *Container {
	c.padding = padding
	return c
}

// WithMargin sets the margin.
func (c *Container) WithMargin(margin Spacing) *Container {
	c.margin = margin
	return c
}

// WithWidth fixes the content width (padding included, border excluded).
func (c *Container) WithWidth(width int) *Container {
	c.width = width
	return c
}

// WithAppliers replaces the container's theme-based style modifiers.
func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.SetAppliers(appliers...)
	return c
}

// WithDirection sets the layout direction.
func (c *Container) WithDirection(dir Direction) *Container {
	c.layout.WithDirection(dir)
	return c
}

// WithGap sets the gap between children.
func (c *Container) WithGap(gap int) *Container {
	c.layout.WithGap(gap)
	return c
}

// Add appends children to the container.
func (c *Container) Add(children ...ui.Renderable) *Container {
	c.children = append(c.children, children...)
	c.layout.Add(children...)
	return c
}

// Children returns the child renderables.
func (c *Container) Children() []ui.Renderable {
	return c.children
}

// SetChildren replaces all children, keeping the layout settings.
func (c *Container) SetChildren(children []ui.Renderable) *Container {
	c.children = children
	c.layout.SetChildren(children)
	return c
}
