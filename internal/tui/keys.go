package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit       key.Binding
	ForceQuit  key.Binding
	NextTab    key.Binding
	HomeTab    key.Binding
	HadithTab  key.Binding
	Up         key.Binding
	Down       key.Binding
	Open       key.Binding
	Back       key.Binding
	Search     key.Binding
	Continue   key.Binding
	Reload     key.Binding
	NextPage   key.Binding
	PrevPage   key.Binding
	FirstPage  key.Binding
	LastPage   key.Binding
	Settings   key.Binding
	FontUp     key.Binding
	FontDown   key.Binding
	SpacingUp  key.Binding
	SpacingDn  key.Binding
	Bold       key.Binding
	Dark       key.Binding
	Bookmark   key.Binding
	Explain    key.Binding
	Actions    key.Binding
	Copy       key.Binding
	OpenWeb    key.Binding
	Random     key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		NextTab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch")),
		HomeTab:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "chapters")),
		HadithTab:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "hadith")),
		Up:         key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:       key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:       key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Continue:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "continue reading")),
		Reload:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		NextPage:   key.NewBinding(key.WithKeys("n", "]", "left"), key.WithHelp("n", "next page")),
		PrevPage:   key.NewBinding(key.WithKeys("p", "[", "right"), key.WithHelp("p", "previous page")),
		FirstPage:  key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first page")),
		LastPage:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last page")),
		Settings:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
		FontUp:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "larger")),
		FontDown:   key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "smaller")),
		SpacingUp:  key.NewBinding(key.WithKeys(">", "."), key.WithHelp(">", "more spacing")),
		SpacingDn:  key.NewBinding(key.WithKeys("<", ","), key.WithHelp("<", "less spacing")),
		Bold:       key.NewBinding(key.WithKeys("B"), key.WithHelp("B", "bold")),
		Dark:       key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "dark mode")),
		Bookmark:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bookmark")),
		Explain:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "explain")),
		Actions:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "actions")),
		Copy:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		OpenWeb:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open in browser")),
		Random:     key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "random")),
		ScrollUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "scroll up")),
		ScrollDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdown", "scroll down")),
	}
}
