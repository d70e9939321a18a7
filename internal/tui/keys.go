package tui

import "github.com/charmbracelet/bubbles/key"

// Keys are the bindings of the lookup screen. Letters are left to the
// text input, so nothing here binds a bare rune.
type Keys struct {
	Submit key.Binding
	Clear  key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k Keys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Clear, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k Keys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Submit, k.Clear, k.Quit}}
}

// DefaultKeys returns the default lookup screen keybindings.
var DefaultKeys = Keys{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "look up"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear history"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}
