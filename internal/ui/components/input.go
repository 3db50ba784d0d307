package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultPlaceholder is shown in an empty input.
const DefaultPlaceholder = "Enter a value"

const (
	defaultInputWidth = 32
	requiredMarker    = "*"
)

// Input is a labelled text field. It only renders; editing is handled by
// the caller, which passes the current value in.
type Input struct {
	BaseComponent
	label       string
	hint        string
	icon        string
	placeholder string
	value       string
	required    bool
	focused     bool
	width       int
}

// NewInput creates an input with the given label.
func NewInput(label string) *Input {
	return &Input{
		BaseComponent: NewBaseComponent(),
		label:         label,
		placeholder:   DefaultPlaceholder,
	}
}

func (i *Input) View() string {
	return i.ViewWithContext(DefaultContext())
}

// ViewWithContext renders label, field box and hint stacked vertically.
func (i *Input) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	lines := make([]string, 0, 3)

	if i.label != "" {
		label := TypographyStyle(theme, TypographyVariantEmphasis).Render(i.label)
		if i.required {
			label += " " + lipgloss.NewStyle().Foreground(theme.Palette.Accent.Base).Render(requiredMarker)
		}
		lines = append(lines, label)
	}

	state := InputStateDefault
	if i.focused {
		state = InputStateFocus
	}
	field := i.ComputeStyle(theme).Inherit(InputStyle(theme, state)).Width(i.fieldWidth(ctx))
	lines = append(lines, field.Render(i.fieldContent(theme)))

	if i.hint != "" {
		lines = append(lines, TypographyStyle(theme, TypographyVariantMeta).Render(i.hint))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (i *Input) fieldWidth(ctx RenderContext) int {
	width := i.width
	if width <= 0 {
		width = defaultInputWidth
	}
	// Border takes two cells.
	if ctx.Constraints.MaxWidth > 0 && width > ctx.Constraints.MaxWidth-2 {
		width = ctx.Constraints.MaxWidth - 2
	}
	return width
}

func (i *Input) fieldContent(theme Theme) string {
	parts := make([]string, 0, 2)
	if i.icon != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.Palette.Sunken.OnBase).Render(i.icon))
	}
	if i.value == "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.Palette.Sunken.OnBase).Render(i.placeholder))
	} else {
		parts = append(parts, i.value)
	}
	return strings.Join(parts, " ")
}

// WithHint sets the help line under the field.
func (i *Input) WithHint(hint string) *Input {
	i.hint = hint
	return i
}

// WithIcon sets a glyph drawn inside the field before the value.
func (i *Input) WithIcon(icon string) *Input {
	i.icon = icon
	return i
}

// WithPlaceholder overrides the empty-field text.
func (i *Input) WithPlaceholder(placeholder string) *Input {
	if placeholder != "" {
		i.placeholder = placeholder
	}
	return i
}

// WithValue sets the field contents.
func (i *Input) WithValue(value string) *Input {
	i.value = value
	return i
}

// WithRequired marks the label with a required indicator.
func (i *Input) WithRequired(required bool) *Input {
	i.required = required
	return i
}

// WithFocused draws the focus border.
func (i *Input) WithFocused(focused bool) *Input {
	i.focused = focused
	return i
}

// WithWidth sets the field width in cells.
func (i *Input) WithWidth(width int) *Input {
	i.width = width
	return i
}

// Placeholder returns the empty-field text.
func (i *Input) Placeholder() string {
	return i.placeholder
}
