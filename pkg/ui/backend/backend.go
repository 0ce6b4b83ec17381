// Package backend defines the terminal backend the frame loop draws to and
// polls events from. The tcell subpackage talks to a real terminal; the sim
// subpackage wraps tcell's simulation screen for tests.
package backend

import "github.com/odvcencio/panekit/pkg/ui/terminal"

// Backend is the terminal abstraction layer.
type Backend interface {
	// Init enters raw mode and the alternate screen and enables mouse reporting.
	Init() error

	// Fini restores the terminal. Safe to call after a panic.
	Fini()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetContent sets a cell at position (x, y) with the given rune and style.
	// The comb parameter contains combining characters (can be nil).
	SetContent(x, y int, mainc rune, comb []rune, style Style)

	// Show flushes pending cell writes to the terminal.
	Show()

	// Clear clears the screen.
	Clear()

	// HideCursor hides the terminal cursor.
	HideCursor()

	// PollEvent blocks until an event is available.
	// Returns nil once the backend has been finalized.
	PollEvent() terminal.Event

	// PostEvent injects an event into the event queue.
	PostEvent(ev terminal.Event) error

	// Sync forces a full redraw on next Show().
	Sync()
}

// RenderTarget is the write-only subset of Backend used when flushing frames.
type RenderTarget interface {
	Size() (width, height int)
	SetContent(x, y int, mainc rune, comb []rune, style Style)
}
