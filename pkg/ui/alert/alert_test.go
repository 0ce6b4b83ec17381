package alert

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/panekit/pkg/ui/surface"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func TestAlert_VisibleUntilDurationAfterFirstRender(t *testing.T) {
	clock := newClock()
	m := NewManager(WithClock(clock.Now))
	m.Schedule(New("Hi", "there", time.Second))

	a, ok := m.FirstVisible()
	require.True(t, ok)

	clock.Advance(time.Hour)
	assert.True(t, a.IsVisible(), "undrawn alerts never expire")

	a.Render(surface.NewBuffer(40, 30), surface.NewRect(0, 0, 40, 30))
	clock.Advance(999 * time.Millisecond)
	assert.True(t, a.IsVisible())

	clock.Advance(time.Millisecond)
	assert.False(t, a.IsVisible())

	_, ok = m.FirstVisible()
	assert.False(t, ok)
}

func TestManager_FirstVisibleInOrder(t *testing.T) {
	clock := newClock()
	m := NewManager(WithClock(clock.Now))
	first := New("1", "a", time.Second)
	second := New("2", "b", time.Second)
	m.Schedule(first)
	m.Schedule(second)

	got, ok := m.FirstVisible()
	require.True(t, ok)
	assert.Same(t, first, got)

	got.Render(surface.NewBuffer(40, 30), surface.NewRect(0, 0, 40, 30))
	clock.Advance(2 * time.Second)

	got, ok = m.FirstVisible()
	require.True(t, ok)
	assert.Same(t, second, got)
}

func TestManager_AlertUsesDefaults(t *testing.T) {
	m := NewManager(WithDefaultDuration(3 * time.Second))
	m.Alert("  saved  ")

	a, ok := m.FirstVisible()
	require.True(t, ok)
	assert.Equal(t, DefaultTitle, a.Title)
	assert.Equal(t, "saved", a.Message)
	assert.Equal(t, 3*time.Second, a.Duration)
	assert.NotEmpty(t, a.ID)
}

func TestManager_Prune(t *testing.T) {
	clock := newClock()
	m := NewManager(WithClock(clock.Now))
	expired := New("old", "x", time.Second)
	pending := New("new", "y", time.Second)
	m.Schedule(expired)
	m.Schedule(pending)

	expired.Render(surface.NewBuffer(40, 30), surface.NewRect(0, 0, 40, 30))
	clock.Advance(time.Second)

	assert.Equal(t, 1, m.Prune())
	assert.Equal(t, 1, m.Len())
	got, ok := m.FirstVisible()
	require.True(t, ok)
	assert.Same(t, pending, got)
	assert.Equal(t, 0, m.Prune())
}

func TestManager_LimitDropsOldest(t *testing.T) {
	m := NewManager(WithLimit(2))
	m.Alert("a")
	m.Alert("b")
	m.Alert("c")

	assert.Equal(t, 2, m.Len())
	got, ok := m.FirstVisible()
	require.True(t, ok)
	assert.Equal(t, "b", got.Message)
}

func TestManager_OnSchedule(t *testing.T) {
	var seen []string
	m := NewManager(WithOnSchedule(func(a *Alert) { seen = append(seen, a.Message) }))
	m.Alert("one")
	m.Schedule(New("t", "two", time.Second))
	assert.Equal(t, []string{"one", "two"}, seen)
}

func TestManager_NilSafe(t *testing.T) {
	var m *Manager
	m.Alert("x")
	m.Schedule(New("t", "m", time.Second))
	_, ok := m.FirstVisible()
	assert.False(t, ok)
	assert.Equal(t, 0, m.Prune())
	assert.Equal(t, 0, m.Len())
}

func TestAlert_RenderDrawsPopup(t *testing.T) {
	clock := newClock()
	a := New("Boom", "hello world", time.Second)
	a.now = clock.Now

	buf := surface.NewBuffer(40, 30)
	buf.Fill(buf.Bounds(), '.', buf.Get(0, 0).Style)
	a.Render(buf, buf.Bounds())

	// popup spans x 10..29, y 10..19; the box takes the first 8 rows
	assert.True(t, strings.HasPrefix(buf.Row(10)[10:], "┌Boom"))
	assert.Contains(t, buf.Row(11), "hello world")
	assert.Equal(t, "1/1", strings.TrimSpace(strings.Trim(buf.Row(18), ".")))
	assert.Equal(t, '.', buf.Get(9, 12).Rune)
	assert.Equal(t, ' ', buf.Get(28, 19).Rune, "popup region is cleared")
}

func TestAlert_RemainingClamps(t *testing.T) {
	clock := newClock()
	a := New("t", "m", time.Second)
	a.now = clock.Now
	assert.Equal(t, time.Second, a.Remaining())

	a.Render(surface.NewBuffer(10, 10), surface.NewRect(0, 0, 10, 10))
	clock.Advance(5 * time.Second)
	assert.Equal(t, time.Duration(0), a.Remaining())
}
