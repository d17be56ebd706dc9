package screens

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// entry is a list row. ref holds whatever the row stands for.
type entry struct {
	title string
	desc  string
	ref   any
}

func (e entry) Title() string       { return e.title }
func (e entry) Description() string { return e.desc }
func (e entry) FilterValue() string { return e.title + " " + e.desc }

// newList returns a filterable list without its own title, help or quit
// keys; the shell renders those.
func newList(items []list.Item) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.SetStatusBarItemName("item", "items")
	return l
}

// selectedRef returns the ref of the highlighted row.
func selectedRef(l list.Model) (any, bool) {
	e, ok := l.SelectedItem().(entry)
	if !ok {
		return nil, false
	}
	return e.ref, true
}

// filtering reports whether the list currently owns key input.
func filtering(l list.Model) bool {
	return l.FilterState() != list.Unfiltered
}

// updateList forwards msg to the list.
func updateList(l *list.Model, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	*l, cmd = l.Update(msg)
	return cmd
}
