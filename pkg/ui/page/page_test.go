package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/panekit/pkg/errors"
	"github.com/odvcencio/panekit/pkg/ui/backend"
	"github.com/odvcencio/panekit/pkg/ui/component"
	"github.com/odvcencio/panekit/pkg/ui/input"
	"github.com/odvcencio/panekit/pkg/ui/menu"
	"github.com/odvcencio/panekit/pkg/ui/surface"
)

type text string

func (t text) Render(_ component.RenderContext, s *surface.Buffer, area surface.Rect) {
	s.SetStringIn(area, area.X, area.Y, string(t), backend.DefaultStyle())
}

type menuText struct {
	text
	m menu.Menu
}

func (w menuText) Menu() (menu.Menu, bool) { return w.m, true }

func noop(menu.Event) {}

func TestNew_PanicsOnDuplicateNode(t *testing.T) {
	shared := component.New(text("x"))
	defer func() {
		err, ok := recover().(*errors.Error)
		require.True(t, ok)
		assert.Equal(t, errors.ErrCodeInvariant, err.Code)
	}()
	New("dup", 'd', component.Row(shared, shared))
	t.Fatal("expected panic")
}

func TestPage_BuildersAndAccessors(t *testing.T) {
	style := backend.DefaultStyle().Background(backend.ColorBlue)
	p := New("Home", 'h', component.New(text("hi"))).
		WithMenuEntries(menu.Entry('r', "Refresh", noop)).
		WithStyle(style)

	assert.Equal(t, "Home", p.Title())
	assert.Equal(t, 'h', p.Shortcut())
	assert.Equal(t, 1, p.Menu().Len())
	assert.Equal(t, style, p.Style())

	p.WithMenu(menu.New())
	assert.Equal(t, 0, p.Menu().Len())
}

func TestPage_RenderAppliesStyle(t *testing.T) {
	style := backend.DefaultStyle().Background(backend.ColorBlue)
	p := New("Home", 'h', component.New(text("hi"))).WithStyle(style)

	buf := surface.NewBuffer(4, 2)
	p.Render(component.Props{}, component.NewEventBuffer(), buf, buf.Bounds())

	assert.Equal(t, "hi  ", buf.Row(0))
	assert.Equal(t, backend.ColorBlue, buf.Get(3, 1).Style.BG())
}

func TestPage_ComponentsAt(t *testing.T) {
	left := component.New(text("l"))
	right := component.New(text("r"))
	p := New("Home", 'h', component.Row(left, right))

	overall := surface.NewRect(0, 0, 20, 5)
	assert.Equal(t, []component.ID{right.ID()}, p.ComponentsAt(surface.Position{X: 15, Y: 2}, overall))
}

func TestPage_FocusedMenu(t *testing.T) {
	w := component.NewFocusable(menuText{text: "w", m: menu.New(menu.Entry('/', "Search", noop))})
	plain := component.NewFocusable(text("p"))
	p := New("Home", 'h', component.Column(w, plain))

	m, ok := p.FocusedMenu(w.ID())
	require.True(t, ok)
	assert.Equal(t, "/) Search", m.Items()[0].Label())

	_, ok = p.FocusedMenu(plain.ID())
	assert.False(t, ok)
	_, ok = p.FocusedMenu(component.NewID())
	assert.False(t, ok)
}

func TestCollection_TryChangePage(t *testing.T) {
	a := New("A", 'a', component.New(text("a")))
	b := New("B", 'b', component.New(text("b")))
	c := NewCollection(a, b)

	_, ok := c.Previous()
	assert.False(t, ok)
	assert.Same(t, a, c.Current())

	assert.False(t, c.TryChangePage('z'))
	assert.Same(t, a, c.Current())
	assert.Equal(t, 0, c.Index())

	assert.True(t, c.TryChangePage('b'))
	assert.Same(t, b, c.Current())
	assert.Equal(t, 1, c.Index())
	prev, ok := c.Previous()
	require.True(t, ok)
	assert.Same(t, a, prev)
	assert.Len(t, c.Pages(), 2)
}

func TestNewCollection_PanicsWhenEmpty(t *testing.T) {
	assert.Panics(t, func() { NewCollection() })
}

func TestCollection_MenuAggregates(t *testing.T) {
	w := component.NewFocusable(menuText{text: "w", m: menu.New(menu.Entry('/', "Search", noop))})
	a := New("Alpha", 'a', w).WithMenuEntries(menu.Entry('r', "Refresh", noop))
	b := New("Beta", 'b', component.New(text("b")))
	c := NewCollection(a, b)

	labels := func(m menu.Menu) []string {
		var out []string
		for _, item := range m.Items() {
			out = append(out, item.Label())
		}
		return out
	}

	assert.Equal(t, []string{"a) Alpha", "b) Beta", "r) Refresh", "/) Search"}, labels(c.Menu(w.ID())))
	assert.Equal(t, []string{"a) Alpha", "b) Beta", "r) Refresh"}, labels(c.Menu(component.NewID())))
	assert.Equal(t, []string{"r) Refresh", "/) Search"}, labels(c.ActionMenu(w.ID())))
}

func TestContext_FocusCycle(t *testing.T) {
	a := component.NewFocusable(text("a"))
	b := component.New(text("b"))
	c := component.NewFocusable(text("c"))
	p := New("P", 'p', component.Row(a, b, c))
	ctx := NewContext(p)

	assert.True(t, ctx.WindowFocused())
	assert.Equal(t, ctx.ID(), ctx.Focused())
	assert.Equal(t, []component.ID{ctx.ID(), a.ID(), c.ID()}, ctx.FocusOrder())

	ctx.FocusNext()
	assert.False(t, ctx.WindowFocused())
	assert.Equal(t, a.ID(), ctx.Focused())

	ctx.FocusNext()
	ctx.FocusNext()
	assert.True(t, ctx.WindowFocused(), "ring wraps back to the window")

	ctx.FocusPrevious()
	assert.Equal(t, c.ID(), ctx.Focused())

	ctx.ResetFocus()
	assert.True(t, ctx.WindowFocused())
}

func TestContext_Reconcile(t *testing.T) {
	a := component.NewFocusable(text("a"))
	b := component.NewFocusable(text("b"))
	pa := New("A", 'a', a)
	pb := New("B", 'b', b)
	ctx := NewContext(pa)

	ctx.FocusNext()
	ev := input.KeyEvent('x')
	ctx.Buffer().Add(a.ID(), &ev)

	assert.False(t, ctx.Reconcile(pa), "same page keeps state")
	assert.Equal(t, a.ID(), ctx.Focused())
	assert.Len(t, ctx.Buffer().Get(a.ID()), 1)

	assert.True(t, ctx.Reconcile(pb))
	assert.Equal(t, pb.ID(), ctx.PageID())
	assert.True(t, ctx.WindowFocused())
	assert.Empty(t, ctx.Buffer().Get(a.ID()))
	assert.Equal(t, []component.ID{ctx.ID(), b.ID()}, ctx.FocusOrder())
}
