package app

import "github.com/charmbracelet/bubbles/key"

// keyMap lists every browse-mode binding. It satisfies help.KeyMap so the
// footer and the help popup render from the same table.
type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextSection key.Binding
	PrevSection key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Top         key.Binding
	Bottom      key.Binding
	Open        key.Binding
	Copy        key.Binding
	Filter      key.Binding
	AllProjects key.Binding
	Theme       key.Binding
	Help        key.Binding
	Quit        key.Binding

	Close      key.Binding
	DialogCopy key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous item"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next item"),
		),
		NextSection: key.NewBinding(
			key.WithKeys("tab", "1", "2", "3", "4", "5", "6"),
			key.WithHelp("tab/1-6", "section"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous section"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", " ", "f"),
			key.WithHelp("pgdn/space", "page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "bottom"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy link"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		AllProjects: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "all projects"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "x"),
			key.WithHelp("esc/x", "close"),
		),
		DialogCopy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy link"),
		),
	}
}

// ShortHelp is shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Open, k.NextSection, k.Filter, k.Theme, k.Help, k.Quit}
}

// FullHelp is shown in the help popup.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextSection, k.PrevSection},
		{k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Open, k.Copy, k.Filter, k.AllProjects},
		{k.Theme, k.Close, k.Help, k.Quit},
	}
}

// dialogHelp is shown in the footer while a dialog is open.
func (k keyMap) dialogHelp() []key.Binding {
	return []key.Binding{k.Close, k.DialogCopy, k.Up, k.Down}
}
