package window

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/panekit/pkg/ui/component"
	"github.com/odvcencio/panekit/pkg/ui/menu"
	"github.com/odvcencio/panekit/pkg/ui/page"
	"github.com/odvcencio/panekit/pkg/ui/surface"
)

// footerLabels lists the hints shown in the footer. The window side shows
// the collection menu, the content side the focused leaf's menu. Entries
// for the current page's own shortcut are left out.
func (w *Window) footerLabels(pages *page.Collection, ctx *page.Context) []string {
	cur := pages.Current()

	var labels []string
	var m menu.Menu
	if ctx.WindowFocused() {
		labels = append(labels, fmt.Sprintf("%c) Exit", w.exitKey))
		m = pages.Menu(ctx.Focused())
	} else {
		labels = append(labels, "ESC) Window")
		m, _ = cur.FocusedMenu(ctx.Focused())
	}

	for _, item := range m.Items() {
		if item.Shortcut == cur.Shortcut() {
			continue
		}
		labels = append(labels, item.Label())
	}
	return labels
}

// renderFooter draws the footer into the last row of area and returns the
// rows above it. A focused leaf implementing component.FooterRenderer gets
// the right half of the footer.
func (w *Window) renderFooter(pages *page.Collection, ctx *page.Context, props component.Props, s *surface.Buffer, area surface.Rect) surface.Rect {
	body, strip := area.SplitLast(1)
	if strip.Empty() {
		return body
	}
	style := pages.Current().Style()
	s.ApplyStyle(strip, style)

	labelArea := strip
	if !ctx.WindowFocused() {
		if leaf, ok := pages.Current().Leaf(ctx.Focused()); ok {
			if fr, ok := leaf.Behavior().(component.FooterRenderer); ok {
				halves := surface.Split(strip, surface.Row, 2)
				labelArea = halves[0]
				fr.RenderFooter(leaf.Context(props, ctx.Buffer()), s, halves[1])
			}
		}
	}

	labels := w.footerLabels(pages, ctx)
	for i, part := range surface.Split(labelArea, surface.Row, len(labels)) {
		text := runewidth.Truncate(labels[i], part.Width, "…")
		s.SetStringIn(part, part.X, part.Y, text, style)
	}
	return body
}
