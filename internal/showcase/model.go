// Package showcase is the interactive terminal playground: a bubbletea model
// that owns the theme controls, re-derives the theme on every change and
// previews it on the component set.
package showcase

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/spectrum/internal/logger"
	"github.com/alexisbeaulieu97/spectrum/internal/theme"
	"github.com/alexisbeaulieu97/spectrum/internal/ui/components"
)

const (
	emailPlaceholder = "team@spectrum.design"
	emailCharLimit   = 64
	trackWidth       = 24
	// wideLayout is the narrowest terminal that fits controls beside the preview.
	wideLayout = 110
)

// Model is the showcase state. Control values live here and nowhere else;
// the snapshot, projection and component theme are recomputed from them.
type Model struct {
	initial    theme.Controls
	controls   theme.Controls
	projection theme.Projection
	theme      components.Theme

	automation bool
	email      textinput.Model
	focus      focusTarget

	keys  keyMap
	help  help.Model
	track progress.Model

	log    *logger.Logger
	preset string

	width  int
	height int
}

// Option customises a Model at construction.
type Option func(*Model)

// WithControls starts the showcase from c instead of the defaults. Reset
// returns to c.
func WithControls(c theme.Controls) Option {
	return func(m *Model) {
		m.initial = c
		m.controls = c
	}
}

// WithPreset records the preset name shown in the header.
func WithPreset(name string) Option {
	return func(m *Model) {
		m.preset = name
	}
}

// WithLogger sets the logger used for recompute diagnostics.
func WithLogger(log *logger.Logger) Option {
	return func(m *Model) {
		if log != nil {
			m.log = log
		}
	}
}

// New builds a showcase model with the derived theme already in place.
func New(opts ...Option) Model {
	email := textinput.New()
	email.Placeholder = emailPlaceholder
	email.CharLimit = emailCharLimit
	email.Prompt = ""

	track := progress.New(progress.WithoutPercentage())
	track.Width = trackWidth

	defaults := theme.DefaultControls()
	m := Model{
		initial:    defaults,
		controls:   defaults,
		automation: true,
		email:      email,
		focus:      focusHue,
		keys:       defaultKeyMap(),
		help:       help.New(),
		track:      track,
		log:        logger.Nop(),
		width:      80,
		height:     24,
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.recompute()
	return m
}

// Init has nothing to start; the showcase does no background work.
func (m Model) Init() tea.Cmd {
	return nil
}

// recompute derives the snapshot and projections for the current controls
// and restyles everything that depends on them.
func (m *Model) recompute() {
	snap := theme.Derive(m.controls)
	m.projection = theme.Project(snap)
	m.theme = components.ThemeFromSnapshot(snap)

	m.track.FullColor = snap.Accent[theme.Accent500].Hex()
	m.track.EmptyColor = snap.Surface[theme.Surface300].Hex()

	m.log.WithFields(map[string]any{
		"hue":        snap.Hue,
		"saturation": m.controls.Saturation,
		"lightness":  m.controls.Lightness,
		"depth":      m.controls.Depth,
		"radius":     m.controls.Radius,
		"mode":       m.controls.Mode(),
	}).Debug("theme recomputed")
}

// Controls returns the current control values.
func (m Model) Controls() theme.Controls {
	return m.controls
}

// Snapshot returns the theme derived from the current controls.
func (m Model) Snapshot() theme.Snapshot {
	return m.projection.Snapshot
}

// Projection returns the style vars, swatches and snippet for the current controls.
func (m Model) Projection() theme.Projection {
	return m.projection
}

// Automation reports the nightly sync switch.
func (m Model) Automation() bool {
	return m.automation
}

// Email returns the team e-mail field contents.
func (m Model) Email() string {
	return m.email.Value()
}

// Focused names the control that receives keys.
func (m Model) Focused() string {
	return m.focus.String()
}
