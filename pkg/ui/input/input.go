// Package input defines the abstract input events routed through a window,
// and the mapper that produces them from native terminal events.
package input

import (
	"fmt"

	"github.com/odvcencio/panekit/pkg/ui/surface"
	"github.com/odvcencio/panekit/pkg/ui/terminal"
)

// Kind identifies an input event.
type Kind int

const (
	// Key is a printable character. Window-focused keys can switch pages.
	Key Kind = iota + 1
	// FocusNext moves focus to the next focusable leaf, wrapping through
	// the window.
	FocusNext
	// FocusPrevious moves focus backward.
	FocusPrevious
	// FocusWindow returns focus to the window.
	FocusWindow
	// Click is a mouse button release at a position.
	Click
)

var kindNames = map[Kind]string{
	Key:           "key",
	FocusNext:     "focus_next",
	FocusPrevious: "focus_previous",
	FocusWindow:   "focus_window",
	Click:         "click",
}

// String returns the kind's metric label.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is one abstract input event. Rune is set for Key events and
// Position for Click events. A frame without input carries a nil *Event.
type Event struct {
	Kind     Kind
	Rune     rune
	Position surface.Position
}

// KeyEvent returns a Key event for r.
func KeyEvent(r rune) Event {
	return Event{Kind: Key, Rune: r}
}

// ClickEvent returns a Click event at p.
func ClickEvent(p surface.Position) Event {
	return Event{Kind: Click, Position: p}
}

// Of returns an event of a kind that carries no payload.
func Of(k Kind) Event {
	return Event{Kind: k}
}

// IsKey reports whether e is a Key event for r.
func (e *Event) IsKey(r rune) bool {
	return e != nil && e.Kind == Key && e.Rune == r
}

func (e Event) String() string {
	switch e.Kind {
	case Key:
		return fmt.Sprintf("key(%q)", e.Rune)
	case Click:
		return fmt.Sprintf("click(%d,%d)", e.Position.X, e.Position.Y)
	default:
		return e.Kind.String()
	}
}

// Mapper converts native terminal events into input events.
// Returning nil drops the event.
type Mapper interface {
	ToInputEvent(ev terminal.Event) *Event
}

// MapperFunc adapts a function to Mapper.
type MapperFunc func(ev terminal.Event) *Event

// ToInputEvent calls f.
func (f MapperFunc) ToInputEvent(ev terminal.Event) *Event {
	return f(ev)
}

// DefaultMapper maps characters to Key, Tab and Shift+Tab to focus moves,
// Escape to window focus and mouse button releases to Click.
type DefaultMapper struct{}

// ToInputEvent implements Mapper.
func (DefaultMapper) ToInputEvent(ev terminal.Event) *Event {
	var out Event
	switch e := ev.(type) {
	case terminal.KeyEvent:
		switch {
		case e.Key == terminal.KeyBacktab, e.Key == terminal.KeyTab && e.Shift:
			out = Of(FocusPrevious)
		case e.Key == terminal.KeyTab:
			out = Of(FocusNext)
		case e.Key == terminal.KeyEscape:
			out = Of(FocusWindow)
		case e.Key == terminal.KeyRune:
			out = KeyEvent(e.Rune)
		default:
			return nil
		}
	case terminal.MouseEvent:
		if e.Action != terminal.MouseRelease {
			return nil
		}
		out = ClickEvent(surface.Position{X: e.X, Y: e.Y})
	default:
		return nil
	}
	return &out
}
