package showcase

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const largeStep = 10

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.focus == focusEmail {
			return m.handleFieldKeys(msg)
		}
		return m.handleKeys(msg)
	}

	return m, nil
}

// handleFieldKeys forwards everything to the e-mail input except the keys
// that leave it. ctrl+c still quits.
func (m Model) handleFieldKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if !key.Matches(msg, m.keys.fieldKeys()...) {
		var cmd tea.Cmd
		m.email, cmd = m.email.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		return m.moveFocus(m.focus.next())
	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(m.focus.prev())
	default:
		return m.moveFocus(focusHue)
	}
}

func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Down, m.keys.Next):
		return m.moveFocus(m.focus.next())

	case key.Matches(msg, m.keys.Up, m.keys.Prev):
		return m.moveFocus(m.focus.prev())

	case key.Matches(msg, m.keys.IncLarge):
		m.step(largeStep)
	case key.Matches(msg, m.keys.DecLarge):
		m.step(-largeStep)
	case key.Matches(msg, m.keys.Inc):
		m.step(1)
	case key.Matches(msg, m.keys.Dec):
		m.step(-1)

	case key.Matches(msg, m.keys.Toggle):
		m.toggle()

	case key.Matches(msg, m.keys.Reset):
		m.controls = m.initial
		m.recompute()
	}

	return m, nil
}

// step nudges the focused slider; it is a no-op on switches.
func (m *Model) step(steps float64) {
	s, ok := sliders[m.focus]
	if !ok {
		return
	}
	if s.nudge(&m.controls, steps) {
		m.recompute()
	}
}

func (m *Model) toggle() {
	switch m.focus {
	case focusDark:
		m.controls.Dark = !m.controls.Dark
		m.recompute()
	case focusAutomation:
		m.automation = !m.automation
	}
}

func (m Model) moveFocus(target focusTarget) (tea.Model, tea.Cmd) {
	m.focus = target
	if target == focusEmail {
		return m, m.email.Focus()
	}
	m.email.Blur()
	return m, nil
}
