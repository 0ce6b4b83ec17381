// Package tcell implements backend.Backend on top of gdamore/tcell.
package tcell

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/panekit/pkg/ui/backend"
	"github.com/odvcencio/panekit/pkg/ui/terminal"
)

// Backend implements backend.Backend using tcell.
type Backend struct {
	screen  tcell.Screen
	noMouse bool

	// Bracketed paste state
	inPaste     bool
	pasteBuffer strings.Builder

	// Button state of the previous mouse event, used to detect releases.
	mouseMu sync.Mutex
	pressed tcell.ButtonMask
}

// New creates a backend for the controlling terminal.
func New() (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Backend{screen: screen}, nil
}

// NewWithScreen creates a backend over an existing tcell screen.
func NewWithScreen(screen tcell.Screen) *Backend {
	return &Backend{screen: screen}
}

// DisableMouse keeps mouse reporting off when the screen is initialized.
func (b *Backend) DisableMouse() {
	b.noMouse = true
}

// Init initializes the screen and enables mouse and paste reporting.
func (b *Backend) Init() error {
	if err := b.screen.Init(); err != nil {
		return err
	}
	if !b.noMouse {
		b.screen.EnableMouse(tcell.MouseButtonEvents)
	}
	b.screen.EnablePaste()
	b.screen.EnableFocus()
	return nil
}

// Fini restores the terminal.
func (b *Backend) Fini() {
	b.screen.Fini()
}

// Size returns the terminal dimensions.
func (b *Backend) Size() (width, height int) {
	return b.screen.Size()
}

// SetContent sets a cell at position (x, y).
func (b *Backend) SetContent(x, y int, mainc rune, comb []rune, style backend.Style) {
	b.screen.SetContent(x, y, mainc, comb, ConvertStyle(style))
}

// Show synchronizes the buffer to the terminal.
func (b *Backend) Show() {
	b.screen.Show()
}

// Clear clears the screen.
func (b *Backend) Clear() {
	b.screen.Clear()
}

// HideCursor hides the cursor.
func (b *Backend) HideCursor() {
	b.screen.HideCursor()
}

// Sync forces a full redraw.
func (b *Backend) Sync() {
	b.screen.Sync()
}

// PollEvent blocks until an event is available.
func (b *Backend) PollEvent() terminal.Event {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return nil
		}

		switch e := ev.(type) {
		case *tcell.EventPaste:
			if e.Start() {
				b.inPaste = true
				b.pasteBuffer.Reset()
				continue
			}
			if e.End() {
				b.inPaste = false
				text := b.pasteBuffer.String()
				b.pasteBuffer.Reset()
				if text != "" {
					return terminal.PasteEvent{Text: text}
				}
				continue
			}

		case *tcell.EventKey:
			if b.inPaste {
				switch e.Key() {
				case tcell.KeyRune:
					b.pasteBuffer.WriteRune(e.Rune())
				case tcell.KeyEnter:
					b.pasteBuffer.WriteRune('\n')
				case tcell.KeyTab:
					b.pasteBuffer.WriteRune('\t')
				}
				continue
			}
		}

		if converted := b.convertEvent(ev); converted != nil {
			return converted
		}
	}
}

// PostEvent injects an event into the queue.
func (b *Backend) PostEvent(ev terminal.Event) error {
	tev := reverseConvertEvent(ev)
	if tev != nil {
		return b.screen.PostEvent(tev)
	}
	return nil
}

// ConvertStyle converts backend.Style to tcell.Style.
func ConvertStyle(s backend.Style) tcell.Style {
	fg, bg, attrs := s.Decompose()
	style := tcell.StyleDefault.
		Foreground(convertColor(fg)).
		Background(convertColor(bg))

	var mask tcell.AttrMask
	for from, to := range attrTable {
		if attrs&from != 0 {
			mask |= to
		}
	}
	return style.Attributes(mask)
}

var attrTable = map[backend.AttrMask]tcell.AttrMask{
	backend.AttrBold:          tcell.AttrBold,
	backend.AttrBlink:         tcell.AttrBlink,
	backend.AttrReverse:       tcell.AttrReverse,
	backend.AttrUnderline:     tcell.AttrUnderline,
	backend.AttrDim:           tcell.AttrDim,
	backend.AttrItalic:        tcell.AttrItalic,
	backend.AttrStrikeThrough: tcell.AttrStrikeThrough,
}

// ConvertTcellStyle converts tcell.Style back to backend.Style.
func ConvertTcellStyle(ts tcell.Style) backend.Style {
	fg, bg, attrs := ts.Decompose()
	style := backend.DefaultStyle().
		Foreground(convertTcellColor(fg)).
		Background(convertTcellColor(bg))
	for to, from := range attrTable {
		if attrs&from != 0 {
			style = style.Attr(to, true)
		}
	}
	return style
}

func convertColor(c backend.Color) tcell.Color {
	if c == backend.ColorDefault {
		return tcell.ColorDefault
	}
	if c.IsRGB() {
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.PaletteColor(int(c))
}

func convertTcellColor(tc tcell.Color) backend.Color {
	if tc == tcell.ColorDefault {
		return backend.ColorDefault
	}
	if tc&tcell.ColorIsRGB != 0 {
		r, g, b := tc.RGB()
		return backend.ColorRGB(uint8(r), uint8(g), uint8(b))
	}
	return backend.Color(tc & 0xFF)
}

// convertEvent converts a tcell event to terminal.Event.
func (b *Backend) convertEvent(ev tcell.Event) terminal.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		mods := e.Modifiers()
		key := convertKey(e.Key())
		if key == terminal.KeyTab && mods&tcell.ModShift != 0 {
			key = terminal.KeyBacktab
		}
		return terminal.KeyEvent{
			Key:   key,
			Rune:  e.Rune(),
			Alt:   mods&tcell.ModAlt != 0,
			Ctrl:  mods&tcell.ModCtrl != 0,
			Shift: mods&tcell.ModShift != 0,
		}
	case *tcell.EventResize:
		w, h := e.Size()
		return terminal.ResizeEvent{Width: w, Height: h}
	case *tcell.EventMouse:
		x, y := e.Position()
		mods := e.Modifiers()
		buttons := e.Buttons()
		b.mouseMu.Lock()
		prev := b.pressed
		b.pressed = buttons &^ (tcell.WheelUp | tcell.WheelDown)
		b.mouseMu.Unlock()

		button := convertMouseButton(buttons)
		action := terminal.MousePress
		switch {
		case buttons == tcell.ButtonNone && prev != tcell.ButtonNone:
			action = terminal.MouseRelease
			button = convertMouseButton(prev)
		case buttons == tcell.ButtonNone:
			action = terminal.MouseMove
		case buttons == prev:
			action = terminal.MouseMove
		}
		return terminal.MouseEvent{
			X:      x,
			Y:      y,
			Button: button,
			Action: action,
			Alt:    mods&tcell.ModAlt != 0,
			Ctrl:   mods&tcell.ModCtrl != 0,
			Shift:  mods&tcell.ModShift != 0,
		}
	case *tcell.EventFocus:
		return terminal.FocusEvent{Gained: e.Focused}
	default:
		return nil
	}
}

var keyTable = map[tcell.Key]terminal.Key{
	tcell.KeyRune:       terminal.KeyRune,
	tcell.KeyUp:         terminal.KeyUp,
	tcell.KeyDown:       terminal.KeyDown,
	tcell.KeyRight:      terminal.KeyRight,
	tcell.KeyLeft:       terminal.KeyLeft,
	tcell.KeyPgUp:       terminal.KeyPageUp,
	tcell.KeyPgDn:       terminal.KeyPageDown,
	tcell.KeyHome:       terminal.KeyHome,
	tcell.KeyEnd:        terminal.KeyEnd,
	tcell.KeyInsert:     terminal.KeyInsert,
	tcell.KeyDelete:     terminal.KeyDelete,
	tcell.KeyBackspace:  terminal.KeyBackspace,
	tcell.KeyBackspace2: terminal.KeyBackspace,
	tcell.KeyTab:        terminal.KeyTab,
	tcell.KeyBacktab:    terminal.KeyBacktab,
	tcell.KeyEnter:      terminal.KeyEnter,
	tcell.KeyEscape:     terminal.KeyEscape,
	tcell.KeyCtrlC:      terminal.KeyCtrlC,
	tcell.KeyCtrlD:      terminal.KeyCtrlD,
	tcell.KeyCtrlZ:      terminal.KeyCtrlZ,
	tcell.KeyF1:         terminal.KeyF1,
	tcell.KeyF2:         terminal.KeyF2,
	tcell.KeyF3:         terminal.KeyF3,
	tcell.KeyF4:         terminal.KeyF4,
	tcell.KeyF5:         terminal.KeyF5,
	tcell.KeyF6:         terminal.KeyF6,
	tcell.KeyF7:         terminal.KeyF7,
	tcell.KeyF8:         terminal.KeyF8,
	tcell.KeyF9:         terminal.KeyF9,
	tcell.KeyF10:        terminal.KeyF10,
	tcell.KeyF11:        terminal.KeyF11,
	tcell.KeyF12:        terminal.KeyF12,
}

func convertKey(k tcell.Key) terminal.Key {
	if key, ok := keyTable[k]; ok {
		return key
	}
	return terminal.KeyNone
}

func reverseKey(k terminal.Key) tcell.Key {
	switch k {
	case terminal.KeyBackspace:
		return tcell.KeyBackspace2
	case terminal.KeyNone:
		return tcell.KeyRune
	}
	for tk, key := range keyTable {
		if key == k && tk != tcell.KeyBackspace {
			return tk
		}
	}
	return tcell.KeyRune
}

func convertMouseButton(buttons tcell.ButtonMask) terminal.MouseButton {
	switch {
	case buttons&tcell.WheelUp != 0:
		return terminal.MouseWheelUp
	case buttons&tcell.WheelDown != 0:
		return terminal.MouseWheelDown
	case buttons&tcell.Button1 != 0:
		return terminal.MouseLeft
	case buttons&tcell.Button2 != 0:
		return terminal.MouseMiddle
	case buttons&tcell.Button3 != 0:
		return terminal.MouseRight
	default:
		return terminal.MouseNone
	}
}

func reverseMouseButton(button terminal.MouseButton) tcell.ButtonMask {
	switch button {
	case terminal.MouseLeft:
		return tcell.Button1
	case terminal.MouseMiddle:
		return tcell.Button2
	case terminal.MouseRight:
		return tcell.Button3
	case terminal.MouseWheelUp:
		return tcell.WheelUp
	case terminal.MouseWheelDown:
		return tcell.WheelDown
	default:
		return tcell.ButtonNone
	}
}

func reverseMods(alt, ctrl, shift bool) tcell.ModMask {
	var mods tcell.ModMask
	if alt {
		mods |= tcell.ModAlt
	}
	if ctrl {
		mods |= tcell.ModCtrl
	}
	if shift {
		mods |= tcell.ModShift
	}
	return mods
}

// reverseConvertEvent converts terminal.Event to tcell.Event for PostEvent.
func reverseConvertEvent(ev terminal.Event) tcell.Event {
	switch e := ev.(type) {
	case terminal.ResizeEvent:
		return tcell.NewEventResize(e.Width, e.Height)
	case terminal.KeyEvent:
		return tcell.NewEventKey(reverseKey(e.Key), e.Rune, reverseMods(e.Alt, e.Ctrl, e.Shift))
	case terminal.MouseEvent:
		buttons := reverseMouseButton(e.Button)
		if e.Action == terminal.MouseRelease {
			buttons = tcell.ButtonNone
		}
		return tcell.NewEventMouse(e.X, e.Y, buttons, reverseMods(e.Alt, e.Ctrl, e.Shift))
	default:
		return nil
	}
}

var _ backend.Backend = (*Backend)(nil)
