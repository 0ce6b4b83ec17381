package page

import (
	"github.com/odvcencio/panekit/pkg/errors"
	"github.com/odvcencio/panekit/pkg/ui/component"
	"github.com/odvcencio/panekit/pkg/ui/menu"
	"github.com/odvcencio/panekit/pkg/ui/surface"
)

// Collection is an ordered set of pages with a current page.
type Collection struct {
	pages    []*Page
	current  int
	previous int
}

// NewCollection creates a collection showing the first page. Panics when
// pages is empty.
func NewCollection(pages ...*Page) *Collection {
	if len(pages) == 0 {
		errors.Invariant("page collection needs at least one page")
	}
	return &Collection{
		pages:    append([]*Page(nil), pages...),
		previous: -1,
	}
}

// TryChangePage switches to the first page whose shortcut is r. Returns
// false and changes nothing when no page matches.
func (c *Collection) TryChangePage(r rune) bool {
	for i, p := range c.pages {
		if p.shortcut == r {
			c.previous = c.current
			c.current = i
			return true
		}
	}
	return false
}

// Current returns the page being shown.
func (c *Collection) Current() *Page {
	return c.pages[c.current]
}

// Previous returns the page shown before the last switch.
func (c *Collection) Previous() (*Page, bool) {
	if c.previous < 0 {
		return nil, false
	}
	return c.pages[c.previous], true
}

// Index returns the position of the current page.
func (c *Collection) Index() int {
	return c.current
}

// Pages returns the pages in order.
func (c *Collection) Pages() []*Page {
	return append([]*Page(nil), c.pages...)
}

// Len returns the number of pages.
func (c *Collection) Len() int {
	return len(c.pages)
}

// SwitchMenu lists one entry per page. Switching is handled by the window,
// so the handlers do nothing.
func (c *Collection) SwitchMenu() menu.Menu {
	items := make([]menu.Item, len(c.pages))
	for i, p := range c.pages {
		items[i] = menu.Entry(p.shortcut, p.title, func(menu.Event) {})
	}
	return menu.New(items...)
}

// Menu aggregates the page switch entries, the current page's menu and the
// focused leaf's menu, in that order.
func (c *Collection) Menu(focused component.ID) menu.Menu {
	return menu.Concat(c.SwitchMenu(), c.ActionMenu(focused))
}

// ActionMenu is Menu without the page switch entries: the items whose
// handlers do something.
func (c *Collection) ActionMenu(focused component.ID) menu.Menu {
	cur := c.Current()
	m := menu.Concat(cur.menu)
	if leafMenu, ok := cur.FocusedMenu(focused); ok {
		m.Append(leafMenu)
	}
	return m
}

// Render draws the current page.
func (c *Collection) Render(props component.Props, events *component.EventBuffer, s *surface.Buffer, area surface.Rect) {
	c.Current().Render(props, events, s, area)
}
