package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/panekit/pkg/ui/alert"
	"github.com/odvcencio/panekit/pkg/ui/input"
)

func TestMenu_HandleRunsMatchingItems(t *testing.T) {
	var calls []string
	m := New(
		Entry('s', "Search", func(Event) { calls = append(calls, "search") }),
		Entry('r', "Refresh", func(Event) { calls = append(calls, "refresh") }),
		Entry('s', "Save", func(Event) { calls = append(calls, "save") }),
	)

	ev := input.KeyEvent('s')
	assert.Equal(t, 2, m.Handle(nil, &ev))
	assert.Equal(t, []string{"search", "save"}, calls)

	ev = input.KeyEvent('x')
	assert.Equal(t, 0, m.Handle(nil, &ev))
}

func TestMenu_HandleIgnoresNonKeys(t *testing.T) {
	ran := false
	m := New(Entry('a', "A", func(Event) { ran = true }))

	ev := input.Of(input.FocusNext)
	m.Handle(nil, &ev)
	m.Handle(nil, nil)
	assert.False(t, ran)
}

func TestMenu_HandlerReceivesAlerts(t *testing.T) {
	alerts := alert.NewManager()
	m := New(Entry('a', "Alert", func(e Event) { e.Alerts.Alert("hi") }))

	ev := input.KeyEvent('a')
	m.Handle(alerts, &ev)

	got, ok := alerts.FirstVisible()
	require.True(t, ok)
	assert.Equal(t, "hi", got.Message)
}

func TestConcat(t *testing.T) {
	a := New(Entry('1', "one", nil))
	b := New(Entry('2', "two", nil), Entry('3', "three", nil))

	joined := Concat(a, Menu{}, b)
	require.Equal(t, 3, joined.Len())
	assert.Equal(t, "1) one", joined.Items()[0].Label())
	assert.Equal(t, "3) three", joined.Items()[2].Label())
	assert.Equal(t, 1, a.Len(), "inputs are not modified")

	a.Append(b)
	assert.Equal(t, 3, a.Len())
}
