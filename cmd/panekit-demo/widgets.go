package main

import (
	"fmt"
	"strings"

	"github.com/odvcencio/panekit/pkg/ui/async"
	"github.com/odvcencio/panekit/pkg/ui/backend"
	"github.com/odvcencio/panekit/pkg/ui/component"
	"github.com/odvcencio/panekit/pkg/ui/input"
	"github.com/odvcencio/panekit/pkg/ui/menu"
	"github.com/odvcencio/panekit/pkg/ui/surface"
)

// frame draws a titled border, bold when focused, and returns the interior.
func frame(ctx component.RenderContext, s *surface.Buffer, area surface.Rect, title string) surface.Rect {
	style := backend.DefaultStyle().Bold(ctx.Focused)
	if ctx.Focused {
		title = "* " + title
	}
	return s.DrawTitledBox(area, title, style)
}

// staticText shows fixed lines.
type staticText struct {
	title string
	lines []string
}

func (w staticText) Render(ctx component.RenderContext, s *surface.Buffer, area surface.Rect) {
	inner := frame(ctx, s, area, w.title)
	for i, line := range w.lines {
		s.SetStringIn(inner, inner.X, inner.Y+i, line, backend.DefaultStyle())
	}
}

// fibonacci computes a slow value in the background and shows it once ready.
type fibonacci struct {
	n      int
	result async.Resource[uint64]
}

func fib(n int) uint64 {
	if n < 2 {
		return uint64(n)
	}
	return fib(n-1) + fib(n-2)
}

func (w *fibonacci) Render(ctx component.RenderContext, s *surface.Buffer, area surface.Rect) {
	inner := frame(ctx, s, area, "Fibonacci")
	n := w.n
	v, ok := w.result.Poll(func() uint64 { return fib(n) })
	line := fmt.Sprintf("computing fib(%d)...", n)
	if ok {
		line = fmt.Sprintf("fib(%d) = %d", n, v)
	}
	s.SetStringIn(inner, inner.X, inner.Y, line, backend.DefaultStyle())
}

// list is a selectable list moved with j and k while focused.
type list struct {
	items     []string
	highlight backend.Style
	selected  int
}

func (w *list) Render(ctx component.RenderContext, s *surface.Buffer, area surface.Rect) {
	switch {
	case ctx.Event.IsKey('j'):
		w.selected = min(w.selected+1, len(w.items)-1)
	case ctx.Event.IsKey('k'):
		w.selected = max(w.selected-1, 0)
	}

	inner := frame(ctx, s, area, "List")
	for i, item := range w.items {
		style := backend.DefaultStyle()
		if i == w.selected {
			style = w.highlight
		}
		s.SetStringIn(inner, inner.X, inner.Y+i, item, style)
	}
}

func (w *list) Menu() (menu.Menu, bool) {
	return menu.New(menu.Entry('/', "Search", func(ev menu.Event) {
		ev.Alerts.Alert("search is not available in the demo")
	})), true
}

// typing echoes the characters typed while it had focus.
type typing struct{}

func typed(history []input.Event) string {
	var sb strings.Builder
	for _, ev := range history {
		if ev.Kind == input.Key {
			sb.WriteRune(ev.Rune)
		}
	}
	return sb.String()
}

func (typing) Render(ctx component.RenderContext, s *surface.Buffer, area surface.Rect) {
	inner := frame(ctx, s, area, "Typing")
	text := typed(ctx.History)
	if inner.Width > 0 && len([]rune(text)) > inner.Width*inner.Height {
		r := []rune(text)
		text = string(r[len(r)-inner.Width*inner.Height:])
	}
	r := []rune(text)
	for y := 0; y < inner.Height && len(r) > 0; y++ {
		n := min(inner.Width, len(r))
		s.SetStringIn(inner, inner.X, inner.Y+y, string(r[:n]), backend.DefaultStyle())
		r = r[n:]
	}
}

func (typing) RenderFooter(ctx component.RenderContext, s *surface.Buffer, area surface.Rect) {
	label := fmt.Sprintf("%d chars", len([]rune(typed(ctx.History))))
	s.SetStringIn(area, area.X+max(0, area.Width-len(label)), area.Y, label, backend.DefaultStyle())
}
