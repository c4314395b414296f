package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add       key.Binding
	Filter    key.Binding
	Export    key.Binding
	Help      key.Binding
	Quit      key.Binding
	PrevTab   key.Binding
	NextTab   key.Binding
	Down      key.Binding
	Up        key.Binding
	Top       key.Binding
	Bottom    key.Binding
	ForceQuit key.Binding
}

var keys = keyMap{
	Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "Add expense")),
	Filter:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "Cycle category filter")),
	Export:    key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "Export CSV")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "Toggle help")),
	Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "Quit")),
	PrevTab:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("← →", "Previous / Next tab")),
	NextTab:   key.NewBinding(key.WithKeys("right", "l")),
	Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j k", "Scroll expenses")),
	Up:        key.NewBinding(key.WithKeys("k", "up")),
	Top:       key.NewBinding(key.WithKeys("g"), key.WithHelp("g G", "Jump to top / bottom")),
	Bottom:    key.NewBinding(key.WithKeys("G")),
	ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
}

// helpSections groups bindings for the help overlay.
func helpSections() []struct {
	title    string
	bindings []key.Binding
} {
	return []struct {
		title    string
		bindings []key.Binding
	}{
		{"Navigation", []key.Binding{
			key.NewBinding(key.WithKeys("o", "e", "c", "p"), key.WithHelp("o e c p", "Jump to tab")),
			keys.PrevTab, keys.Down, keys.Top,
		}},
		{"Actions", []key.Binding{keys.Add, keys.Filter, keys.Export, keys.Help, keys.Quit}},
	}
}
