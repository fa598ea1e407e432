package terminal

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/go-drift/adapt/pkg/render"
)

// keyMap lists the fixed bindings plus one binding per button shortcut.
type keyMap struct {
	Quit    key.Binding
	Help    key.Binding
	buttons []key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

// withButtons returns a copy of k bound to the shortcuts in lines.
// Disabled buttons keep their binding but are hidden from help.
func (k keyMap) withButtons(lines []render.Line) keyMap {
	k.buttons = nil
	for _, line := range lines {
		shortcut, ok := line.Shortcut()
		if !ok {
			continue
		}
		binding := key.NewBinding(
			key.WithKeys(shortcut),
			key.WithHelp(shortcut, line.Text),
		)
		binding.SetEnabled(!line.Disabled)
		k.buttons = append(k.buttons, binding)
	}
	return k
}

func (k keyMap) ShortHelp() []key.Binding {
	return append(append([]key.Binding{}, k.buttons...), k.Help, k.Quit)
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.buttons, {k.Help, k.Quit}}
}
