package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the catalog view's keyboard bindings. Scrolling keys are
// delegated to the viewport's own key map.
type keyMap struct {
	Quit          key.Binding
	Help          key.Binding
	CycleTheme    key.Binding
	ToggleCompact key.Binding
	Top           key.Binding
	Bottom        key.Binding
}

// defaultKeyMap returns the default key bindings.
func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		ToggleCompact: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Compact cards"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Bottom"),
		),
	}
}

// helpBindings returns the bindings listed in the help footer, in order.
func (k keyMap) helpBindings() []key.Binding {
	scroll := key.NewBinding(key.WithKeys("j", "k"), key.WithHelp("j/k", "Scroll"))
	return []key.Binding{scroll, k.Top, k.Bottom, k.ToggleCompact, k.CycleTheme, k.Help, k.Quit}
}
