package showcase

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/spectrum/internal/theme"
)

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyDown       = tea.KeyMsg{Type: tea.KeyDown}
	keyUp         = tea.KeyMsg{Type: tea.KeyUp}
	keyLeft       = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight      = tea.KeyMsg{Type: tea.KeyRight}
	keyShiftLeft  = tea.KeyMsg{Type: tea.KeyShiftLeft}
	keyShiftRight = tea.KeyMsg{Type: tea.KeyShiftRight}
	keyTab        = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab   = tea.KeyMsg{Type: tea.KeyShiftTab}
	keySpace      = tea.KeyMsg{Type: tea.KeySpace}
	keyEnter      = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc        = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestNewModelDerivesDefaults(t *testing.T) {
	t.Parallel()

	m := New()
	assert.Equal(t, theme.DefaultControls(), m.Controls())
	assert.Equal(t, theme.Derive(theme.DefaultControls()), m.Snapshot())
	assert.Equal(t, theme.Snippet(m.Snapshot()), m.Projection().Snippet)
	assert.True(t, m.Automation())
	assert.Equal(t, "hue", m.Focused())
	assert.Nil(t, m.Init())
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	t.Parallel()

	next, cmd := New().Update(tea.WindowSizeMsg{Width: 140, Height: 50})
	m, ok := next.(Model)
	require.True(t, ok)
	assert.Nil(t, cmd)
	assert.Equal(t, 140, m.width)
	assert.Equal(t, 50, m.height)
	assert.Equal(t, 140, m.help.Width)
}

func TestSliderStepsRecomputeTheme(t *testing.T) {
	t.Parallel()

	m := press(t, New(), keyRight)
	assert.Equal(t, 233.0, m.Controls().Hue)
	assert.Equal(t, 233.0, m.Snapshot().Hue)

	m = press(t, m, runes("L"), keyShiftRight)
	assert.Equal(t, 253.0, m.Controls().Hue)

	m = press(t, m, runes("h"), keyShiftLeft, runes("H"))
	assert.Equal(t, 232.0, m.Controls().Hue)
	assert.Equal(t, "hsl(232 78% 54%)", m.Snapshot().Accent[theme.Accent500].Color)
}

func TestSliderClampsToRange(t *testing.T) {
	t.Parallel()

	// Saturation slider runs 30..100.
	m := press(t, New(), keyDown)
	assert.Equal(t, "saturation", m.Focused())
	for range 5 {
		m = press(t, m, keyShiftRight)
	}
	assert.Equal(t, 100.0, m.Controls().Saturation)

	// Depth slider runs 0..6.
	m = press(t, m, keyDown, keyDown)
	assert.Equal(t, "depth", m.Focused())
	m = press(t, m, keyShiftLeft, keyLeft)
	assert.Equal(t, 0.0, m.Controls().Depth)
	assert.Equal(t, 96.0, m.Snapshot().Surface[theme.Surface0].Lightness)
}

func TestRadiusSliderUpdatesSnippet(t *testing.T) {
	t.Parallel()

	m := press(t, New(), keyDown, keyDown, keyDown, keyDown)
	require.Equal(t, "radius", m.Focused())

	m = press(t, m, keyShiftRight)
	assert.Equal(t, 28.0, m.Controls().Radius)
	assert.Contains(t, m.Projection().Snippet, "--radius-lg: 34px;")
}

func TestFocusWrapsBothWays(t *testing.T) {
	t.Parallel()

	m := press(t, New(), keyUp)
	assert.Equal(t, "automation", m.Focused())

	m = press(t, m, keyTab)
	assert.Equal(t, "hue", m.Focused())

	m = press(t, m, keyShiftTab, keyShiftTab)
	assert.Equal(t, "email", m.Focused())
}

func TestDarkSwitchToggles(t *testing.T) {
	t.Parallel()

	m := press(t, New(), keyShiftTab, keyShiftTab, keyShiftTab)
	require.Equal(t, "dark", m.Focused())

	m = press(t, m, keySpace)
	assert.True(t, m.Controls().Dark)
	assert.True(t, m.Snapshot().Dark)
	assert.Equal(t, "hsl(220 100% 96%)", m.Snapshot().AccentForeground)

	m = press(t, m, keyEnter)
	assert.False(t, m.Controls().Dark)

	m = press(t, m, keyRight)
	assert.False(t, m.Controls().Dark, "arrows do nothing on a switch")
}

func TestAutomationToggleLeavesThemeAlone(t *testing.T) {
	t.Parallel()

	m := press(t, New(), keyShiftTab)
	require.Equal(t, "automation", m.Focused())

	before := m.Snapshot()
	m = press(t, m, keySpace)
	assert.False(t, m.Automation())
	assert.Equal(t, before, m.Snapshot())
}

func TestEmailFieldCapturesKeys(t *testing.T) {
	t.Parallel()

	m := press(t, New(), keyShiftTab, keyShiftTab)
	require.Equal(t, "email", m.Focused())
	assert.True(t, m.email.Focused())

	m = press(t, m, runes("q"), runes("r"), runes("?"), runes("l"))
	assert.Equal(t, "qr?l", m.Email())
	assert.Equal(t, theme.DefaultControls(), m.Controls(), "slider keys are typed, not applied")
	assert.False(t, m.help.ShowAll)

	m = press(t, m, keyEsc)
	assert.Equal(t, "hue", m.Focused())
	assert.False(t, m.email.Focused())
	assert.Equal(t, "qr?l", m.Email())
}

func TestEmailFieldTabLeaves(t *testing.T) {
	t.Parallel()

	m := press(t, New(), keyShiftTab, keyShiftTab, keyTab)
	assert.Equal(t, "automation", m.Focused())

	m = press(t, m, keyShiftTab, keyShiftTab)
	assert.Equal(t, "dark", m.Focused())
}

func TestResetRestoresInitialControls(t *testing.T) {
	t.Parallel()

	start := theme.Controls{Hue: 12, Saturation: 64, Lightness: 40, Depth: 1, Radius: 12, Dark: true}
	m := New(WithControls(start), WithPreset("ember"))
	assert.Equal(t, start, m.Controls())

	m = press(t, m, keyShiftRight, keyDown, keyLeft)
	require.NotEqual(t, start, m.Controls())

	m = press(t, m, runes("r"))
	assert.Equal(t, start, m.Controls())
	assert.Equal(t, theme.Derive(start), m.Snapshot())
}

func TestHelpAndQuit(t *testing.T) {
	t.Parallel()

	m := press(t, New(), runes("?"))
	assert.True(t, m.help.ShowAll)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	m = press(t, New(), keyShiftTab, keyShiftTab)
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd(), "ctrl+c quits even from the e-mail field")
}
