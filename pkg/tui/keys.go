package tui

import (
	"github.com/ajxudir/creatordash/pkg/creators"
	"github.com/charmbracelet/bubbles/key"
)

// sortBinding selects a sort key from the keyboard.
type sortBinding struct {
	binding key.Binding
	key     creators.SortKey
}

// keyMap holds the dashboard key bindings.
type keyMap struct {
	Quit         key.Binding
	Exit         key.Binding
	Focus        key.Binding
	Blur         key.Binding
	ToggleActive key.Binding
	ClearSort    key.Binding
	Sort         []sortBinding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:         key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Exit:         key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("q/esc", "quit")),
		Focus:        key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Blur:         key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("enter/esc", "done")),
		ToggleActive: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "active only")),
		ClearSort:    key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "unsorted")),
		Sort: []sortBinding{
			{key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "name")), creators.SortKeyName},
			{key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "followers")), creators.SortKeyFollowers},
			{key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "revenue")), creators.SortKeyRevenue},
			{key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "status")), creators.SortKeyActive},
			{key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "created")), creators.SortKeyCreatedAt},
			{key.NewBinding(key.WithKeys("6"), key.WithHelp("6", "id")), creators.SortKeyID},
		},
	}
}

// helpBindings lists the bindings shown in the footer for the current mode.
func (k keyMap) helpBindings(searching bool) []key.Binding {
	if searching {
		return []key.Binding{k.Blur, k.ToggleActive, k.Quit}
	}
	bindings := []key.Binding{k.Focus, k.ToggleActive}
	for _, s := range k.Sort {
		bindings = append(bindings, s.binding)
	}
	return append(bindings, k.ClearSort, k.Exit)
}
