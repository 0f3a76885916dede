package shop

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap lists every binding the storefront understands.
type keyMap struct {
	Home    key.Binding
	Shop    key.Binding
	About   key.Binding
	Contact key.Binding
	Cart    key.Binding
	Help    key.Binding
	Quit    key.Binding
	// ForceQuit works everywhere, including while typing.
	ForceQuit key.Binding
	Dismiss   key.Binding

	Open key.Binding
	Add  key.Binding
	Back key.Binding

	Up       key.Binding
	Down     key.Binding
	Increase key.Binding
	Decrease key.Binding
	Remove   key.Binding
	Clear    key.Binding

	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Type      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Home:      key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "home")),
		Shop:      key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "shop")),
		About:     key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "about")),
		Contact:   key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "contact")),
		Cart:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cart")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Dismiss:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),

		Open: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "view")),
		Add:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add to cart")),
		Back: key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),

		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Increase: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more")),
		Decrease: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "less")),
		Remove:   key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "remove")),
		Clear:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear")),

		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Submit:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "send")),
		Type:      key.NewBinding(key.WithKeys("enter", "tab"), key.WithHelp("enter", "edit form")),
	}
}

// contextKeys adapts a set of bindings to help.KeyMap for the current screen.
type contextKeys struct {
	short []key.Binding
	full  [][]key.Binding
}

func (c contextKeys) ShortHelp() []key.Binding  { return c.short }
func (c contextKeys) FullHelp() [][]key.Binding { return c.full }
