package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add, Edit, Remove, Grab, ShiftUp, ShiftDown key.Binding
	Up, Down, Drop, Cancel, Quit                key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Remove:    key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "remove")),
		Grab:      key.NewBinding(key.WithKeys("m", " "), key.WithHelp("m/space", "drag")),
		ShiftUp:   key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "move up")),
		ShiftDown: key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "move down")),

		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Drop:   key.NewBinding(key.WithKeys("enter", " ", "m"), key.WithHelp("enter", "drop")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) browseHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Remove, k.Grab, k.ShiftUp, k.ShiftDown}
}
