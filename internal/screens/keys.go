package screens

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the keys screens react to. The shell owns tab, esc and quit.
type KeyMap struct {
	Open      key.Binding
	Back      key.Binding
	Reload    key.Binding
	Logout    key.Binding
	Author    key.Binding
	Milestone key.Binding
	CopyURL   key.Binding
	NextRef   key.Binding
	PrevRef   key.Binding
}

// Keys is the key map every screen uses.
var Keys = KeyMap{
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Back: key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("backspace", "back"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Logout: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "log out"),
	),
	Author: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "author"),
	),
	Milestone: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "milestone"),
	),
	CopyURL: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy link"),
	),
	NextRef: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n/p", "next/prev reference"),
	),
	PrevRef: key.NewBinding(
		key.WithKeys("p"),
	),
}

func (k KeyMap) listHints() []key.Binding {
	return []key.Binding{k.Open, k.Reload}
}

func (k KeyMap) detailHints() []key.Binding {
	return []key.Binding{k.NextRef, k.Open, k.Author, k.Milestone, k.CopyURL, k.Back}
}
