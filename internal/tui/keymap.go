package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Focus
	Search     key.Binding
	Categories key.Binding
	Back       key.Binding

	// Sorting
	SortID       key.Binding
	SortName     key.Binding
	SortCategory key.Binding
	SortOwner    key.Binding

	// Filters
	NextOwner     key.Binding
	PrevOwner     key.Binding
	AllOwners     key.Binding
	ToggleChip    key.Binding
	AllCategories key.Binding
	ClearQuery    key.Binding
	Reset         key.Binding

	// Application
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "previous chip"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "next chip"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+b"),
			key.WithHelp("PgUp", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+f"),
			key.WithHelp("PgDn", "page down"),
		),

		// Focus
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Categories: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "categories"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "enter", "tab"),
			key.WithHelp("Esc", "back to table"),
		),

		// Sorting
		SortID: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "sort by id"),
		),
		SortName: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "sort by product"),
		),
		SortCategory: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "sort by category"),
		),
		SortOwner: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "sort by user"),
		),

		// Filters
		NextOwner: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "next owner"),
		),
		PrevOwner: key.NewBinding(
			key.WithKeys("O"),
			key.WithHelp("O", "previous owner"),
		),
		AllOwners: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "all owners"),
		),
		ToggleChip: key.NewBinding(
			key.WithKeys(" ", "space", "x", "enter"),
			key.WithHelp("Space", "toggle category"),
		),
		AllCategories: key.NewBinding(
			key.WithKeys("A", "a"),
			key.WithHelp("A", "all categories"),
		),
		ClearQuery: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("Ctrl+U", "clear search"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),

		// Application
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Categories, k.SortID, k.NextOwner, k.Reset, k.Help, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.SortID, k.SortName, k.SortCategory, k.SortOwner},
		{k.NextOwner, k.PrevOwner, k.AllOwners, k.Reset},
		{k.Search, k.ClearQuery, k.Categories, k.Back},
		{k.Left, k.Right, k.ToggleChip, k.AllCategories},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
