package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding

	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Feed actions
	Click    key.Binding
	Favorite key.Binding
	Cart     key.Binding
	Reviews  key.Binding
	SeeAll   key.Binding

	// Top bar shortcuts
	Search        key.Binding
	Back          key.Binding
	OpenFavorites key.Binding
	OpenCart      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next section"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous section"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/left", "Move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/right", "Move right"),
		),

		Click: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open focused item"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Toggle favorite"),
		),
		Cart: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Toggle cart"),
		),
		Reviews: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Show reviews"),
		),
		SeeAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "See all"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "backspace"),
			key.WithHelp("b", "Back"),
		),
		OpenFavorites: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "Favorites"),
		),
		OpenCart: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "Cart"),
		),
	}
}

// ShortHelp returns key bindings for the footer hint line.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Click, k.Favorite, k.Cart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay, one group per section.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Navigation
		{k.Tab, k.ShiftTab, k.Up, k.Down, k.Left, k.Right},
		// Feed
		{k.Click, k.Favorite, k.Cart, k.Reviews, k.SeeAll},
		// Top bar
		{k.Back, k.Search, k.OpenFavorites, k.OpenCart},
		// General
		{k.CycleTheme, k.Help, k.Quit},
	}
}
