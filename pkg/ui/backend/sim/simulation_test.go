package sim

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/panekit/pkg/ui/backend"
	"github.com/odvcencio/panekit/pkg/ui/terminal"
)

func newInitialized(t *testing.T, w, h int) *Backend {
	t.Helper()
	sim := New(w, h)
	require.NoError(t, sim.Init())
	t.Cleanup(sim.Fini)
	return sim
}

// nextInput polls until a key or mouse event arrives, skipping resize and
// focus notifications the screen may emit on init.
func nextInput(t *testing.T, sim *Backend) terminal.Event {
	t.Helper()
	for i := 0; i < 16; i++ {
		switch ev := sim.PollEvent().(type) {
		case terminal.KeyEvent, terminal.MouseEvent:
			return ev
		case nil:
			t.Fatal("backend closed")
		}
	}
	t.Fatal("no input event")
	return nil
}

func TestBackend_BasicRendering(t *testing.T) {
	sim := newInitialized(t, 20, 5)

	style := backend.DefaultStyle().Foreground(backend.ColorWhite)
	for i, r := range "Hello, World!" {
		sim.SetContent(i, 0, r, nil, style)
	}
	sim.Show()

	lines := strings.Split(sim.Capture(), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "Hello, World!"), "first line: %q", lines[0])
}

func TestBackend_SizeAndResize(t *testing.T) {
	sim := newInitialized(t, 80, 24)

	w, h := sim.Size()
	assert.Equal(t, 80, w)
	assert.Equal(t, 24, h)

	sim.Resize(40, 12)
	w, h = sim.Size()
	assert.Equal(t, 40, w)
	assert.Equal(t, 12, h)
}

func TestBackend_FindText(t *testing.T) {
	sim := newInitialized(t, 30, 4)

	for i, r := range "find me" {
		sim.SetContent(5+i, 2, r, nil, backend.DefaultStyle())
	}
	sim.Show()

	x, y := sim.FindText("find me")
	assert.Equal(t, 5, x)
	assert.Equal(t, 2, y)
	assert.False(t, sim.ContainsText("absent"))
}

func TestBackend_CaptureCellStyle(t *testing.T) {
	sim := newInitialized(t, 10, 2)

	style := backend.DefaultStyle().Foreground(backend.ColorRed).Bold(true)
	sim.SetContent(1, 1, 'x', nil, style)
	sim.Show()

	r, got := sim.CaptureCell(1, 1)
	assert.Equal(t, 'x', r)
	assert.Equal(t, backend.ColorRed, got.FG())
	assert.NotZero(t, got.Attributes()&backend.AttrBold)
}

func TestBackend_InjectedKeysArePolled(t *testing.T) {
	sim := newInitialized(t, 10, 2)

	sim.InjectKeyRune('q')
	sim.InjectKey(terminal.KeyTab, 0)
	sim.InjectKey(terminal.KeyBacktab, 0)

	ev := nextInput(t, sim)
	require.IsType(t, terminal.KeyEvent{}, ev)
	assert.Equal(t, terminal.KeyRune, ev.(terminal.KeyEvent).Key)
	assert.Equal(t, 'q', ev.(terminal.KeyEvent).Rune)

	ev = nextInput(t, sim)
	assert.Equal(t, terminal.KeyTab, ev.(terminal.KeyEvent).Key)

	ev = nextInput(t, sim)
	assert.Equal(t, terminal.KeyBacktab, ev.(terminal.KeyEvent).Key)
}

func TestBackend_InjectClickReportsRelease(t *testing.T) {
	sim := newInitialized(t, 10, 5)

	sim.InjectClick(3, 4)

	press := nextInput(t, sim).(terminal.MouseEvent)
	assert.Equal(t, terminal.MousePress, press.Action)
	assert.Equal(t, terminal.MouseLeft, press.Button)

	release := nextInput(t, sim).(terminal.MouseEvent)
	assert.Equal(t, terminal.MouseRelease, release.Action)
	assert.Equal(t, terminal.MouseLeft, release.Button)
	assert.Equal(t, 3, release.X)
	assert.Equal(t, 4, release.Y)
}
