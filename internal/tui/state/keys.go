package state

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	EditURL      key.Binding
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	Select       key.Binding
	Reload       key.Binding
	ReloadAll    key.Binding
	ClearAll     key.Binding
	Add          key.Binding
	Remove       key.Binding
	Sync         key.Binding
	AutoRefresh  key.Binding
	EditInterval key.Binding
	IntervalUp   key.Binding
	IntervalDown key.Binding
	Fullscreen   key.Binding
	Open         key.Binding
	Back         key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		EditURL:      key.NewBinding(key.WithKeys("u", ":"), key.WithHelp("u", "url")),
		Up:           key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:         key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		Left:         key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("←/h", "left")),
		Right:        key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("→/l", "right")),
		Select:       key.NewBinding(key.WithKeys("enter", " ", "space"), key.WithHelp("enter", "select")),
		Reload:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		ReloadAll:    key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reload all")),
		ClearAll:     key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear all")),
		Add:          key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add view")),
		Remove:       key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove selected")),
		Sync:         key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sync")),
		AutoRefresh:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "auto-refresh")),
		EditInterval: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "interval")),
		IntervalUp:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "interval +5s")),
		IntervalDown: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "interval -5s")),
		Fullscreen:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fullscreen")),
		Open:         key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open externally")),
		Back:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.EditURL, k.Select, k.Reload, k.Sync, k.AutoRefresh, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Select},
		{k.EditURL, k.Reload, k.ReloadAll, k.ClearAll, k.Open},
		{k.Add, k.Remove, k.Fullscreen, k.Back},
		{k.Sync, k.AutoRefresh, k.EditInterval, k.IntervalUp, k.IntervalDown},
		{k.Help, k.Quit},
	}
}

// inputKeyMap is active while a text input has focus.
type inputKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

func defaultInputKeyMap() inputKeyMap {
	return inputKeyMap{
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Cancel:  key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
	}
}

func (k inputKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}

func (k inputKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
