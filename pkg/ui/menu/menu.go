// Package menu implements shortcut-keyed menus whose handlers can schedule
// alerts.
package menu

import (
	"fmt"

	"github.com/odvcencio/panekit/pkg/ui/alert"
	"github.com/odvcencio/panekit/pkg/ui/input"
)

// Event is passed to a menu handler.
type Event struct {
	Alerts *alert.Manager
}

// Handler runs when its item's shortcut is pressed. Handlers are shared
// between copies of a menu.
type Handler func(Event)

// Item is one menu entry.
type Item struct {
	Shortcut rune
	Name     string
	Handler  Handler
}

// Label returns the footer label for the item, e.g. "q) Quit".
func (i Item) Label() string {
	return fmt.Sprintf("%c) %s", i.Shortcut, i.Name)
}

// Entry builds an item.
func Entry(shortcut rune, name string, h Handler) Item {
	return Item{Shortcut: shortcut, Name: name, Handler: h}
}

// Menu is an ordered list of items. The zero value is an empty menu.
type Menu struct {
	items []Item
}

// New creates a menu from items.
func New(items ...Item) Menu {
	return Menu{items: append([]Item(nil), items...)}
}

// Concat joins menus in order.
func Concat(menus ...Menu) Menu {
	var out Menu
	for _, m := range menus {
		out.items = append(out.items, m.items...)
	}
	return out
}

// Append adds other's items after m's.
func (m *Menu) Append(other Menu) {
	m.items = append(m.items, other.items...)
}

// Items returns the menu entries in order.
func (m Menu) Items() []Item {
	return append([]Item(nil), m.items...)
}

// Len returns the number of entries.
func (m Menu) Len() int {
	return len(m.items)
}

// Handle runs every item whose shortcut matches a Key event and returns how
// many ran. Other events are ignored.
func (m Menu) Handle(alerts *alert.Manager, ev *input.Event) int {
	if ev == nil || ev.Kind != input.Key {
		return 0
	}
	ran := 0
	for _, item := range m.items {
		if item.Shortcut != ev.Rune || item.Handler == nil {
			continue
		}
		item.Handler(Event{Alerts: alerts})
		ran++
	}
	return ran
}
