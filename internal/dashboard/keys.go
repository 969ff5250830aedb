package dashboard

import "github.com/charmbracelet/bubbles/key"

// browseKeys holds key bindings for browse mode.
type browseKeys struct {
	Up     key.Binding
	Down   key.Binding
	New    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Filter key.Binding
	Quit   key.Binding
}

// ShortHelp returns the browse mode bindings for the help bar.
func (k browseKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.New, k.Edit, k.Delete, k.Filter, k.Quit}
}

// FullHelp returns the browse mode bindings grouped for expanded help.
func (k browseKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Filter},
		{k.New, k.Edit, k.Delete},
		{k.Quit},
	}
}

// filterKeys holds key bindings while typing a filter query.
type filterKeys struct {
	Apply key.Binding
	Clear key.Binding
}

// ShortHelp returns the filter mode bindings for the help bar.
func (k filterKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Apply, k.Clear}
}

// FullHelp returns the filter mode bindings grouped for expanded help.
func (k filterKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Apply, k.Clear}}
}

// formKeys holds key bindings for the contact form.
type formKeys struct {
	Next     key.Binding
	Prev     key.Binding
	Category key.Binding
	Submit   key.Binding
	Cancel   key.Binding
}

// ShortHelp returns the form mode bindings for the help bar.
func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Category, k.Submit, k.Cancel}
}

// FullHelp returns the form mode bindings grouped for expanded help.
func (k formKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Category},
		{k.Submit, k.Cancel},
	}
}

// confirmKeys holds key bindings for the delete prompt.
type confirmKeys struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// ShortHelp returns the confirm mode bindings for the help bar.
func (k confirmKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}

// FullHelp returns the confirm mode bindings grouped for expanded help.
func (k confirmKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Confirm, k.Cancel}}
}

// noticeKeys holds key bindings for the blocking notice.
type noticeKeys struct {
	AnyKey key.Binding
}

// ShortHelp returns the notice mode bindings for the help bar.
func (k noticeKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.AnyKey}
}

// FullHelp returns the notice mode bindings grouped for expanded help.
func (k noticeKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.AnyKey}}
}

// BrowseKeyMap returns the key bindings for browse mode.
func BrowseKeyMap() browseKeys {
	return browseKeys{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		New: key.NewBinding(
			key.WithKeys("n", "+"),
			key.WithHelp("n", "new contact"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// FilterKeyMap returns the key bindings for filter mode.
func FilterKeyMap() filterKeys {
	return filterKeys{
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
	}
}

// FormKeyMap returns the key bindings for the contact form.
func FormKeyMap() formKeys {
	return formKeys{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Category: key.NewBinding(
			key.WithKeys("left", "right"),
			key.WithHelp("←/→", "category"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ConfirmKeyMap returns the key bindings for the delete prompt.
func ConfirmKeyMap() confirmKeys {
	return confirmKeys{
		Confirm: key.NewBinding(
			key.WithKeys("enter", "y"),
			key.WithHelp("enter/y", "delete"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "n"),
			key.WithHelp("esc/n", "cancel"),
		),
	}
}

// NoticeKeyMap returns the key bindings for the blocking notice.
func NoticeKeyMap() noticeKeys {
	return noticeKeys{
		// "any" is a display-only key for the help bar; actual any-key
		// handling is done in the Update() switch on tea.KeyMsg.
		AnyKey: key.NewBinding(
			key.WithKeys("any"),
			key.WithHelp("any key", "back to form"),
		),
	}
}
