// Package sim provides a simulation backend for tests.
package sim

import (
	"strings"
	"sync"

	tcellv2 "github.com/gdamore/tcell/v2"

	"github.com/odvcencio/panekit/pkg/ui/backend"
	"github.com/odvcencio/panekit/pkg/ui/backend/tcell"
	"github.com/odvcencio/panekit/pkg/ui/terminal"
)

// Backend is a testable backend using tcell's simulation screen.
type Backend struct {
	*tcell.Backend
	screen tcellv2.SimulationScreen
	width  int
	height int
	mu     sync.Mutex
}

// New creates a new simulation backend with the given dimensions.
func New(width, height int) *Backend {
	screen := tcellv2.NewSimulationScreen("")
	return &Backend{
		Backend: tcell.NewWithScreen(screen),
		screen:  screen,
		width:   width,
		height:  height,
	}
}

// Init initializes the simulation screen at the configured size.
func (s *Backend) Init() error {
	if err := s.Backend.Init(); err != nil {
		return err
	}
	s.mu.Lock()
	s.screen.SetSize(s.width, s.height)
	s.mu.Unlock()
	return nil
}

// Resize changes the simulation screen size.
func (s *Backend) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width, s.height = width, height
	s.screen.SetSize(width, height)
}

// InjectKey injects a key event into the simulation.
func (s *Backend) InjectKey(key terminal.Key, r rune) {
	_ = s.PostEvent(terminal.KeyEvent{Key: key, Rune: r})
}

// InjectKeyRune injects a regular character keypress.
func (s *Backend) InjectKeyRune(r rune) {
	s.InjectKey(terminal.KeyRune, r)
}

// InjectKeyString injects a string as a sequence of key events.
func (s *Backend) InjectKeyString(str string) {
	for _, r := range str {
		s.InjectKeyRune(r)
	}
}

// InjectClick injects a left button press followed by its release.
func (s *Backend) InjectClick(x, y int) {
	_ = s.PostEvent(terminal.MouseEvent{X: x, Y: y, Button: terminal.MouseLeft, Action: terminal.MousePress})
	_ = s.PostEvent(terminal.MouseEvent{X: x, Y: y, Button: terminal.MouseLeft, Action: terminal.MouseRelease})
}

// InjectResize resizes the screen and queues the matching event.
func (s *Backend) InjectResize(width, height int) {
	s.Resize(width, height)
	_ = s.PostEvent(terminal.ResizeEvent{Width: width, Height: height})
}

// Capture captures the current screen content as a string.
func (s *Backend) Capture() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, h := s.screen.Size()
	return s.captureLocked(0, 0, w, h)
}

// CaptureRegion captures a rectangular region of the screen.
func (s *Backend) CaptureRegion(x, y, w, h int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.captureLocked(x, y, w, h)
}

func (s *Backend) captureLocked(x, y, w, h int) string {
	lines := make([]string, 0, h)
	for row := y; row < y+h; row++ {
		var line strings.Builder
		for col := x; col < x+w; col++ {
			mainc, comb, _, _ := s.screen.GetContent(col, row)
			if mainc == 0 {
				mainc = ' '
			}
			line.WriteRune(mainc)
			for _, c := range comb {
				line.WriteRune(c)
			}
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// CaptureCell returns the content and style of a single cell.
func (s *Backend) CaptureCell(x, y int) (mainc rune, style backend.Style) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, _, tcStyle, _ := s.screen.GetContent(x, y)
	return m, tcell.ConvertTcellStyle(tcStyle)
}

// FindText searches for text on the screen and returns its position.
func (s *Backend) FindText(text string) (x, y int) {
	lines := strings.Split(s.Capture(), "\n")
	for row, line := range lines {
		if col := strings.Index(line, text); col >= 0 {
			return len([]rune(line[:col])), row
		}
	}
	return -1, -1
}

// ContainsText returns true if the text appears anywhere on screen.
func (s *Backend) ContainsText(text string) bool {
	x, y := s.FindText(text)
	return x >= 0 && y >= 0
}

var _ backend.Backend = (*Backend)(nil)
