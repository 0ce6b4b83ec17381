package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/panekit/pkg/ui/surface"
	"github.com/odvcencio/panekit/pkg/ui/terminal"
)

func TestDefaultMapper(t *testing.T) {
	tests := []struct {
		name string
		in   terminal.Event
		want *Event
	}{
		{"rune", terminal.KeyEvent{Key: terminal.KeyRune, Rune: 'x'}, &Event{Kind: Key, Rune: 'x'}},
		{"tab", terminal.KeyEvent{Key: terminal.KeyTab}, &Event{Kind: FocusNext}},
		{"shift tab", terminal.KeyEvent{Key: terminal.KeyTab, Shift: true}, &Event{Kind: FocusPrevious}},
		{"backtab", terminal.KeyEvent{Key: terminal.KeyBacktab}, &Event{Kind: FocusPrevious}},
		{"escape", terminal.KeyEvent{Key: terminal.KeyEscape}, &Event{Kind: FocusWindow}},
		{"mouse up", terminal.MouseEvent{X: 4, Y: 9, Action: terminal.MouseRelease}, &Event{Kind: Click, Position: surface.Position{X: 4, Y: 9}}},
		{"mouse down", terminal.MouseEvent{X: 4, Y: 9, Action: terminal.MousePress}, nil},
		{"enter", terminal.KeyEvent{Key: terminal.KeyEnter}, nil},
		{"resize", terminal.ResizeEvent{Width: 10, Height: 10}, nil},
		{"paste", terminal.PasteEvent{Text: "abc"}, nil},
		{"focus", terminal.FocusEvent{Gained: true}, nil},
		{"nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultMapper{}.ToInputEvent(tt.in))
		})
	}
}

func TestMapperFunc(t *testing.T) {
	m := MapperFunc(func(terminal.Event) *Event {
		ev := KeyEvent('z')
		return &ev
	})
	got := m.ToInputEvent(nil)
	require.NotNil(t, got)
	assert.True(t, got.IsKey('z'))
}

func TestEventIsKey(t *testing.T) {
	var none *Event
	assert.False(t, none.IsKey('a'))

	ev := Of(FocusNext)
	assert.False(t, ev.IsKey('a'))

	ev = KeyEvent('a')
	assert.True(t, ev.IsKey('a'))
	assert.False(t, ev.IsKey('b'))
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "key('q')", KeyEvent('q').String())
	assert.Equal(t, "click(1,2)", ClickEvent(surface.Position{X: 1, Y: 2}).String())
	assert.Equal(t, "focus_window", Of(FocusWindow).String())
}
