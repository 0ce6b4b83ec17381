// Package terminal defines the native event vocabulary produced by backends.
// Window code never sees these directly; an input.Mapper turns them into
// abstract input events.
package terminal

import "fmt"

// Event is a native terminal event. Backends return nil instead of an Event
// once they are finalized, which stops the window's poller.
type Event interface {
	eventMarker()
}

// KeyEvent is a key press. Rune is set when Key is KeyRune; the default
// mapper turns those into Key input and maps the focus keys to focus moves.
// Other keys are dropped.
type KeyEvent struct {
	Key   Key
	Rune  rune
	Alt   bool
	Ctrl  bool
	Shift bool
}

func (KeyEvent) eventMarker() {}

// ResizeEvent reports a new terminal size. The run loop resizes its frame
// buffer and forces a full redraw.
type ResizeEvent struct {
	Width  int
	Height int
}

func (ResizeEvent) eventMarker() {}

// MouseEvent is a mouse button or wheel event at a cell position. Only
// releases become Click input.
type MouseEvent struct {
	X, Y   int
	Button MouseButton
	Action MouseAction
	Alt    bool
	Ctrl   bool
	Shift  bool
}

func (MouseEvent) eventMarker() {}

// PasteEvent carries bracketed paste content. It has no input mapping and
// is ignored by the window.
type PasteEvent struct {
	Text string
}

func (PasteEvent) eventMarker() {}

// FocusEvent reports the terminal window gaining or losing OS focus. It is
// unrelated to component focus.
type FocusEvent struct {
	Gained bool
}

func (FocusEvent) eventMarker() {}

// MouseButton identifies the button of a MouseEvent.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// MouseAction is the kind of change a MouseEvent reports. MouseMove means
// no button changed state.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseMove
)

// Key names the non-character keys a backend reports. Character input is
// KeyRune with the rune in KeyEvent.Rune.
type Key int

const (
	KeyNone Key = iota
	KeyRune     // Regular character
	KeyEnter
	KeyBackspace
	KeyTab
	KeyBacktab // Shift+Tab as reported by most terminals
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
	KeyInsert
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyCtrlC
	KeyCtrlD
	KeyCtrlZ
)

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyRune:      "rune",
	KeyEnter:     "enter",
	KeyBackspace: "backspace",
	KeyTab:       "tab",
	KeyBacktab:   "backtab",
	KeyEscape:    "esc",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdn",
	KeyDelete:    "delete",
	KeyInsert:    "insert",
	KeyCtrlC:     "ctrl+c",
	KeyCtrlD:     "ctrl+d",
	KeyCtrlZ:     "ctrl+z",
}

// String returns a short name such as "tab" or "f5" for log fields.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k >= KeyF1 && k <= KeyF12 {
		return fmt.Sprintf("f%d", int(k-KeyF1)+1)
	}
	return "unknown"
}
