package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the editor reacts to outside of text entry.
type KeyMap struct {
	NextTab      key.Binding
	ContainerTab key.Binding
	ItemTab      key.Binding

	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Edit  key.Binding

	PrevItem key.Binding
	NextItem key.Binding
	Select   key.Binding
	Add      key.Binding
	Remove   key.Binding

	Reset       key.Binding
	Orientation key.Binding
	Styles      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// EditKeyMap is active while a free-form value is being typed.
type EditKeyMap struct {
	Commit key.Binding
	Cancel key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch tab")),
		ContainerTab: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "container tab")),
		ItemTab:      key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "item tab")),

		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev field")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next field")),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev value")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next value")),
		Edit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit value")),

		PrevItem: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev item")),
		NextItem: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next item")),
		Select:   key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "select item")),
		Add:      key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "add item")),
		Remove:   key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "remove item")),

		Reset:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset tab")),
		Orientation: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "rotate device")),
		Styles:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "styles panel")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// DefaultEditKeyMap returns the text entry bindings.
func DefaultEditKeyMap() EditKeyMap {
	return EditKeyMap{
		Commit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Up, k.Left, k.Edit, k.Select, k.Add, k.Remove, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.ContainerTab, k.ItemTab, k.Reset},
		{k.Up, k.Down, k.Left, k.Right, k.Edit},
		{k.PrevItem, k.NextItem, k.Select, k.Add, k.Remove},
		{k.Orientation, k.Styles, k.Help, k.Quit},
	}
}

// ShortHelp implements help.KeyMap.
func (k EditKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Commit, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k EditKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
