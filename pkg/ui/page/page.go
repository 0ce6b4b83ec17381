// Package page groups component trees into switchable pages and tracks the
// focus state of each page.
package page

import (
	"github.com/odvcencio/panekit/pkg/errors"
	"github.com/odvcencio/panekit/pkg/ui/area"
	"github.com/odvcencio/panekit/pkg/ui/backend"
	"github.com/odvcencio/panekit/pkg/ui/component"
	"github.com/odvcencio/panekit/pkg/ui/menu"
	"github.com/odvcencio/panekit/pkg/ui/surface"
)

// Page is a titled component tree selected by a shortcut key.
type Page struct {
	id       component.ID
	title    string
	shortcut rune
	root     component.Component
	table    *area.Table
	menu     menu.Menu
	style    backend.Style
}

// New creates a page. Factory nodes under root are built here. Panics if a
// node appears twice in the tree.
func New(title string, shortcut rune, root component.Component) *Page {
	if dup, ok := component.DuplicateID(root); ok {
		errors.Invariant("duplicate component in page tree", "page", title, "id", dup.String())
	}
	return &Page{
		id:       component.NewID(),
		title:    title,
		shortcut: shortcut,
		root:     root,
		table:    area.Unroll(root),
		style:    backend.DefaultStyle(),
	}
}

// WithMenu sets the page-level menu.
func (p *Page) WithMenu(m menu.Menu) *Page {
	p.menu = m
	return p
}

// WithMenuEntries sets the page-level menu from items.
func (p *Page) WithMenuEntries(items ...menu.Item) *Page {
	p.menu = menu.New(items...)
	return p
}

// WithStyle sets the style applied to the page area before drawing.
func (p *Page) WithStyle(s backend.Style) *Page {
	p.style = s
	return p
}

// ID returns the page id, which keys the page's focus context.
func (p *Page) ID() component.ID { return p.id }

// Title returns the name shown in the switch menu.
func (p *Page) Title() string { return p.title }

// Shortcut returns the key that switches to the page.
func (p *Page) Shortcut() rune { return p.shortcut }

// Root returns the page's component tree.
func (p *Page) Root() component.Component { return p.root }

// Menu returns the page-level menu.
func (p *Page) Menu() menu.Menu { return p.menu }

// Style returns the style applied under the page and its footer.
func (p *Page) Style() backend.Style { return p.style }

// FocusableIDs returns the page's focusable leaves in depth-first order.
func (p *Page) FocusableIDs() []component.ID {
	return p.root.FocusableIDs()
}

// ComponentsAt returns the leaves whose rectangle within overall contains pos.
func (p *Page) ComponentsAt(pos surface.Position, overall surface.Rect) []component.ID {
	return p.table.ComponentsAt(pos, overall)
}

// Leaf finds a leaf of this page by id.
func (p *Page) Leaf(id component.ID) (*component.Leaf, bool) {
	return component.FindLeaf(p.root, id)
}

// FocusedMenu returns the menu of the leaf with id, if it has one.
func (p *Page) FocusedMenu(id component.ID) (menu.Menu, bool) {
	leaf, ok := p.Leaf(id)
	if !ok {
		return menu.Menu{}, false
	}
	return leaf.Menu()
}

// Render styles area and draws the tree into it.
func (p *Page) Render(props component.Props, events *component.EventBuffer, s *surface.Buffer, area surface.Rect) {
	s.ApplyStyle(area, p.style)
	p.root.Render(props, events, s, area)
}
