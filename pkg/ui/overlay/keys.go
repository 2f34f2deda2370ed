package overlay

import "github.com/charmbracelet/bubbles/key"

// keyMap maps terminal keys onto the paste gesture. A terminal reports no
// key releases, so Enter stands in for letting go of the trigger modifier.
type keyMap struct {
	Paste   key.Binding
	Reverse key.Binding
	Commit  key.Binding
	Cancel  key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Paste: key.NewBinding(
			key.WithKeys("v", "ctrl+v"),
			key.WithHelp("v", "paste / next"),
		),
		Reverse: key.NewBinding(
			key.WithKeys("V"),
			key.WithHelp("V", "previous"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "release ctrl"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Paste, k.Reverse, k.Commit, k.Cancel, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
