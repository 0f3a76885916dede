package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// MenuEntry is one selectable section in the navigation bar.
type MenuEntry struct {
	Key    string
	Label  string
	Active bool
}

// Menu renders the section navigation bar.
type Menu struct {
	entries []MenuEntry
}

// NewMenu constructs a menu from ordered entries.
func NewMenu(entries []MenuEntry) Menu {
	clone := make([]MenuEntry, len(entries))
	copy(clone, entries)
	return Menu{entries: clone}
}

// Entries returns the ordered menu entries.
func (m Menu) Entries() []MenuEntry {
	clone := make([]MenuEntry, len(m.entries))
	copy(clone, m.entries)
	return clone
}

// View renders entries as "[key] Label", styling the active one.
func (m Menu) View(normal, active lipgloss.Style) string {
	parts := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		label := fmt.Sprintf("[%s] %s", e.Key, e.Label)
		if e.Active {
			parts = append(parts, active.Render(label))
			continue
		}
		parts = append(parts, normal.Render(label))
	}
	return strings.Join(parts, "  ")
}
