package page

import (
	"github.com/odvcencio/panekit/pkg/ui/component"
	"github.com/odvcencio/panekit/pkg/ui/focus"
)

// Context is the focus and event state of one page. The first element of
// the focus ring is the context's own id and stands for the window.
type Context struct {
	id     component.ID
	pageID component.ID
	ring   *focus.Ring[component.ID]
	events *component.EventBuffer
}

// NewContext creates a window-focused context for p.
func NewContext(p *Page) *Context {
	c := &Context{
		id:     component.NewID(),
		events: component.NewEventBuffer(),
	}
	c.rebuild(p)
	return c
}

func (c *Context) rebuild(p *Page) {
	c.pageID = p.id
	c.ring = focus.NewRing(append([]component.ID{c.id}, p.FocusableIDs()...)...)
	c.events.Reset()
}

// Reconcile rebuilds the focus ring and clears recorded events when p is
// not the page this context was built for. Reports whether it rebuilt.
func (c *Context) Reconcile(p *Page) bool {
	if c.pageID == p.id {
		return false
	}
	c.rebuild(p)
	return true
}

// ID returns the id that stands for the window in the focus ring.
func (c *Context) ID() component.ID { return c.id }

// PageID returns the id of the tracked page.
func (c *Context) PageID() component.ID { return c.pageID }

// WindowFocused reports whether focus is on the window rather than content.
func (c *Context) WindowFocused() bool {
	cur, ok := c.ring.Current()
	return ok && cur == c.id
}

// Focused returns the focused id: a leaf, or the context id when the window
// has focus.
func (c *Context) Focused() component.ID {
	cur, _ := c.ring.Current()
	return cur
}

// FocusNext moves focus forward, wrapping through the window.
func (c *Context) FocusNext() { c.ring.Next() }

// FocusPrevious moves focus backward, wrapping through the window.
func (c *Context) FocusPrevious() { c.ring.Prev() }

// ResetFocus returns focus to the window.
func (c *Context) ResetFocus() { c.ring.Reset() }

// FocusOrder returns the focus ring contents, window id first.
func (c *Context) FocusOrder() []component.ID { return c.ring.Items() }

// Buffer returns the events recorded on this page.
func (c *Context) Buffer() *component.EventBuffer { return c.events }
