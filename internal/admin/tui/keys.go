package tui

import "github.com/charmbracelet/bubbles/key"

// listKeyMap is active while the list is shown (Idle)
type listKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	New    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func (k listKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.Edit, k.Delete, k.Reload, k.Help, k.Quit}
}

func (k listKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.New, k.Edit, k.Delete},
		{k.Reload, k.Help, k.Quit},
	}
}

// formKeyMap is active while the form is open
type formKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Cancel key.Binding
}

func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Submit, k.Cancel}
}

func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev}, {k.Submit, k.Cancel}}
}

// confirmKeyMap is active while a delete confirmation is pending
type confirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

func (k confirmKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}

func (k confirmKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Confirm, k.Cancel}}
}

// busyKeyMap is shown while a request is in flight
type busyKeyMap struct {
	ForceQuit key.Binding
}

func (k busyKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ForceQuit}
}

func (k busyKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.ForceQuit}}
}

type keyMaps struct {
	List    listKeyMap
	Form    formKeyMap
	Confirm confirmKeyMap
	Busy    busyKeyMap
}

func newKeyMaps() keyMaps {
	return keyMaps{
		List: listKeyMap{
			Up: key.NewBinding(
				key.WithKeys("up", "k"),
				key.WithHelp("↑/k", "up"),
			),
			Down: key.NewBinding(
				key.WithKeys("down", "j"),
				key.WithHelp("↓/j", "down"),
			),
			New: key.NewBinding(
				key.WithKeys("n"),
				key.WithHelp("n", "new"),
			),
			Edit: key.NewBinding(
				key.WithKeys("e", "enter"),
				key.WithHelp("e/enter", "edit"),
			),
			Delete: key.NewBinding(
				key.WithKeys("d", "delete"),
				key.WithHelp("d", "delete"),
			),
			Reload: key.NewBinding(
				key.WithKeys("r"),
				key.WithHelp("r", "reload"),
			),
			Help: key.NewBinding(
				key.WithKeys("?"),
				key.WithHelp("?", "more keys"),
			),
			Quit: key.NewBinding(
				key.WithKeys("q"),
				key.WithHelp("q", "quit"),
			),
		},
		Form: formKeyMap{
			Next: key.NewBinding(
				key.WithKeys("tab", "down"),
				key.WithHelp("tab/↓", "next field"),
			),
			Prev: key.NewBinding(
				key.WithKeys("shift+tab", "up"),
				key.WithHelp("shift+tab/↑", "previous field"),
			),
			Submit: key.NewBinding(
				key.WithKeys("ctrl+s"),
				key.WithHelp("ctrl+s", "save"),
			),
			Cancel: key.NewBinding(
				key.WithKeys("esc"),
				key.WithHelp("esc", "cancel"),
			),
		},
		Confirm: confirmKeyMap{
			Confirm: key.NewBinding(
				key.WithKeys("y", "enter"),
				key.WithHelp("y/enter", "delete"),
			),
			Cancel: key.NewBinding(
				key.WithKeys("n", "esc"),
				key.WithHelp("n/esc", "keep"),
			),
		},
		Busy: busyKeyMap{
			ForceQuit: key.NewBinding(
				key.WithKeys("ctrl+c"),
				key.WithHelp("ctrl+c", "quit"),
			),
		},
	}
}
