package showcase

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds every binding the showcase reacts to. It satisfies help.KeyMap.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Next     key.Binding
	Prev     key.Binding
	Dec      key.Binding
	Inc      key.Binding
	DecLarge key.Binding
	IncLarge key.Binding
	Toggle   key.Binding
	Blur     key.Binding
	Reset    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous control"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next control"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next control"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous control"),
		),
		Dec: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "decrease"),
		),
		Inc: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "increase"),
		),
		DecLarge: key.NewBinding(
			key.WithKeys("shift+left", "H"),
			key.WithHelp("H", "decrease by 10"),
		),
		IncLarge: key.NewBinding(
			key.WithKeys("shift+right", "L"),
			key.WithHelp("L", "increase by 10"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave field"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// fieldKeys are the only bindings that reach past a focused text field.
func (k keyMap) fieldKeys() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Blur}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Inc, k.Toggle, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Dec, k.Inc, k.DecLarge, k.IncLarge},
		{k.Toggle, k.Blur, k.Reset},
		{k.Help, k.Quit},
	}
}
