package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/spectrum/internal/ui"
)

const defaultNotificationIcon = "◆"

// Notification is a titled message box with an accent border and an optional
// code block under the message.
type Notification struct {
	BaseComponent
	title   string
	message string
	code    string
	icon    string
}

// NewNotification creates a notification with the given title.
func NewNotification(title string) *Notification {
	return &Notification{
		BaseComponent: NewBaseComponent(),
		title:         title,
		icon:          defaultNotificationIcon,
	}
}

func (n *Notification) View() string {
	return n.ViewWithContext(DefaultContext())
}

func (n *Notification) ViewWithContext(ctx RenderContext) string {
	heading := n.title
	if n.icon != "" {
		heading = n.icon + " " + n.title
	}

	children := []ui.Renderable{
		NewText(heading).WithAppliers(
			Typography(TypographyVariantEmphasis),
			Foreground(PaletteAccent),
		),
	}
	if n.message != "" {
		children = append(children, BodyText(n.message))
	}
	if n.code != "" {
		children = append(children, CodeText(n.code))
	}

	container := NewContainer(children...).
		WithPadding(SymmetricSpacing(0, 1)).
		WithGap(1).
		WithAppliers(
			Background(PaletteSurface),
			RadiusBorder(RadiusSizeMedium),
			BorderColor(PaletteAccent),
			func(base lipgloss.Style, theme Theme) lipgloss.Style {
				return n.ComputeStyle(theme).Inherit(base)
			},
		)

	return container.ViewWithContext(ctx)
}

// WithMessage sets the body text.
func (n *Notification) WithMessage(message string) *Notification {
	n.message = message
	return n
}

// WithCode appends a preformatted block, such as a CSS snippet.
func (n *Notification) WithCode(code string) *Notification {
	n.code = code
	return n
}

// WithIcon replaces the heading glyph. An empty icon hides it.
func (n *Notification) WithIcon(icon string) *Notification {
	n.icon = icon
	return n
}

// WithAppliers applies theme-based style modifiers.
func (n *Notification) WithAppliers(appliers ...StyleFunc) *Notification {
	n.AddAppliers(appliers...)
	return n
}

// Title returns the notification title.
func (n *Notification) Title() string {
	return n.title
}
