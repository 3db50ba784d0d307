package components

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	switchKnob  = "●"
	switchTrack = "  "
)

// Switch is an on/off toggle with an optional visible label.
type Switch struct {
	BaseComponent
	label     string
	checked   bool
	hideLabel bool
	focused   bool
}

// NewSwitch creates an unchecked switch.
func NewSwitch(label string) *Switch {
	return &Switch{
		BaseComponent: NewBaseComponent(),
		label:         label,
	}
}

func (s *Switch) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext draws the track with the knob on the right when checked.
func (s *Switch) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme

	track := lipgloss.NewStyle().Foreground(theme.Palette.Surface.Base)
	var knob string
	if s.checked {
		track = track.Background(theme.Palette.Accent.Base)
		knob = switchTrack + switchKnob
	} else {
		track = track.Background(theme.Palette.Sunken.Muted)
		knob = switchKnob + switchTrack
	}
	view := track.Render(" " + knob + " ")

	if !s.hideLabel && s.label != "" {
		label := s.ComputeStyle(theme).Inherit(TypographyStyle(theme, TypographyVariantBody))
		if s.focused {
			label = label.Underline(true)
		}
		view += " " + label.Render(s.label)
	}
	return view
}

// WithChecked sets the on state.
func (s *Switch) WithChecked(checked bool) *Switch {
	s.checked = checked
	return s
}

// WithHideLabel keeps the label for identification but does not draw it.
func (s *Switch) WithHideLabel(hide bool) *Switch {
	s.hideLabel = hide
	return s
}

// WithFocused underlines the label.
func (s *Switch) WithFocused(focused bool) *Switch {
	s.focused = focused
	return s
}

// Label returns the switch label, drawn or not.
func (s *Switch) Label() string {
	return s.label
}

// Checked reports the on state.
func (s *Switch) Checked() bool {
	return s.checked
}
