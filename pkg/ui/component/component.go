// Package component implements the retained component tree: layouts that
// split their area between children, leaves that draw, and factories that
// build a subtree on first use.
package component

import (
	"github.com/odvcencio/panekit/pkg/ui/input"
	"github.com/odvcencio/panekit/pkg/ui/menu"
	"github.com/odvcencio/panekit/pkg/ui/surface"
)

// RenderContext is what a leaf sees when it draws. Event is only set on the
// focused leaf. History holds every event routed to the leaf on this page.
type RenderContext struct {
	Focused bool
	Event   *input.Event
	History []input.Event
}

// Renderer draws a leaf.
type Renderer interface {
	Render(ctx RenderContext, s *surface.Buffer, area surface.Rect)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(ctx RenderContext, s *surface.Buffer, area surface.Rect)

// Render calls f.
func (f RendererFunc) Render(ctx RenderContext, s *surface.Buffer, area surface.Rect) {
	f(ctx, s, area)
}

// MenuProvider is implemented by behaviors that contribute menu entries
// while focused.
type MenuProvider interface {
	Menu() (menu.Menu, bool)
}

// FooterRenderer is implemented by behaviors that draw into the footer
// while focused.
type FooterRenderer interface {
	RenderFooter(ctx RenderContext, s *surface.Buffer, area surface.Rect)
}

// Factory builds a subtree. Build is called at most once per node.
type Factory interface {
	Build() Component
}

// FactoryFunc adapts a function to Factory.
type FactoryFunc func() Component

// Build calls f.
func (f FactoryFunc) Build() Component {
	return f()
}

// Props carry per-frame routing state down the tree.
type Props struct {
	Focused ID
	Event   *input.Event
}

// Component is a node of the tree: *Layout, *Leaf or *FactoryNode.
type Component interface {
	// Render draws the node into area.
	Render(props Props, events *EventBuffer, s *surface.Buffer, area surface.Rect)
	// FocusableIDs returns focusable leaf ids in depth-first order.
	FocusableIDs() []ID
	// Visit calls fn on each leaf depth-first until fn returns false.
	// Returns false if the walk stopped early.
	Visit(fn func(*Leaf) bool) bool

	sealed()
}

// Layout splits its area into equal parts, one per child.
type Layout struct {
	id        ID
	direction surface.Direction
	children  []Component
}

// Column stacks children top to bottom.
func Column(children ...Component) *Layout {
	return newLayout(surface.Column, children)
}

// Row places children left to right.
func Row(children ...Component) *Layout {
	return newLayout(surface.Row, children)
}

func newLayout(d surface.Direction, children []Component) *Layout {
	return &Layout{
		id:        NewID(),
		direction: d,
		children:  append([]Component(nil), children...),
	}
}

// ID returns the layout's node id.
func (l *Layout) ID() ID { return l.id }

// Direction reports whether children stack as a column or sit in a row.
func (l *Layout) Direction() surface.Direction { return l.direction }

// Children returns the child nodes in order.
func (l *Layout) Children() []Component {
	return append([]Component(nil), l.children...)
}

// Render splits area evenly and draws each child into its part.
func (l *Layout) Render(props Props, events *EventBuffer, s *surface.Buffer, area surface.Rect) {
	parts := surface.Split(area, l.direction, len(l.children))
	for i, child := range l.children {
		child.Render(props, events, s, parts[i])
	}
}

// FocusableIDs collects the children's focusable ids in order.
func (l *Layout) FocusableIDs() []ID {
	var ids []ID
	for _, child := range l.children {
		ids = append(ids, child.FocusableIDs()...)
	}
	return ids
}

// Visit walks the children in order.
func (l *Layout) Visit(fn func(*Leaf) bool) bool {
	for _, child := range l.children {
		if !child.Visit(fn) {
			return false
		}
	}
	return true
}

func (*Layout) sealed() {}

// Leaf draws through its behavior.
type Leaf struct {
	id        ID
	focusable bool
	behavior  Renderer
}

// New creates a leaf that never takes focus.
func New(behavior Renderer) *Leaf {
	return &Leaf{id: NewID(), behavior: behavior}
}

// NewFocusable creates a leaf that takes part in the focus cycle.
func NewFocusable(behavior Renderer) *Leaf {
	return &Leaf{id: NewID(), focusable: true, behavior: behavior}
}

// ID returns the leaf's node id, which is also its focus and event key.
func (l *Leaf) ID() ID { return l.id }

// Focusable reports whether the leaf takes part in the focus cycle.
func (l *Leaf) Focusable() bool { return l.focusable }

// Behavior returns the renderer the leaf draws through.
func (l *Leaf) Behavior() Renderer { return l.behavior }

// Menu returns the behavior's menu, if it provides one.
func (l *Leaf) Menu() (menu.Menu, bool) {
	if mp, ok := l.behavior.(MenuProvider); ok {
		return mp.Menu()
	}
	return menu.Menu{}, false
}

// Context builds the render context the leaf would see under props.
func (l *Leaf) Context(props Props, events *EventBuffer) RenderContext {
	ctx := RenderContext{
		Focused: !props.Focused.IsZero() && props.Focused == l.id,
		History: events.Get(l.id),
	}
	if ctx.Focused {
		ctx.Event = props.Event
	}
	return ctx
}

// Render draws the behavior with the leaf's view of props and history.
func (l *Leaf) Render(props Props, events *EventBuffer, s *surface.Buffer, area surface.Rect) {
	l.behavior.Render(l.Context(props, events), s, area)
}

// FocusableIDs returns the leaf's id if it is focusable.
func (l *Leaf) FocusableIDs() []ID {
	if l.focusable {
		return []ID{l.id}
	}
	return nil
}

func (l *Leaf) Visit(fn func(*Leaf) bool) bool {
	return fn(l)
}

func (*Leaf) sealed() {}

// FactoryNode defers building its subtree until first needed and keeps the
// result for the node's lifetime.
type FactoryNode struct {
	factory Factory
	cache   Component
}

// NewFactory creates a node that builds its subtree from f on first use.
func NewFactory(f Factory) *FactoryNode {
	return &FactoryNode{factory: f}
}

// Component returns the built subtree, building it on the first call.
func (f *FactoryNode) Component() Component {
	if f.cache == nil {
		f.cache = f.factory.Build()
	}
	return f.cache
}

// Built reports whether the subtree exists yet.
func (f *FactoryNode) Built() bool {
	return f.cache != nil
}

// Render builds the subtree if needed and draws it.
func (f *FactoryNode) Render(props Props, events *EventBuffer, s *surface.Buffer, area surface.Rect) {
	f.Component().Render(props, events, s, area)
}

func (f *FactoryNode) FocusableIDs() []ID {
	return f.Component().FocusableIDs()
}

func (f *FactoryNode) Visit(fn func(*Leaf) bool) bool {
	return f.Component().Visit(fn)
}

func (*FactoryNode) sealed() {}
