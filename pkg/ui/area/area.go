// Package area maps every leaf of a component tree to a function computing
// its rectangle from the tree's overall area, for hit-testing.
package area

import (
	"github.com/odvcencio/panekit/pkg/ui/component"
	"github.com/odvcencio/panekit/pkg/ui/surface"
)

// Calculator computes a leaf's rectangle from the root's rectangle.
type Calculator func(overall surface.Rect) surface.Rect

type entry struct {
	id   component.ID
	calc Calculator
}

// Table holds one calculator per leaf, in breadth-first order.
type Table struct {
	entries []entry
	index   map[component.ID]int
}

type pending struct {
	node component.Component
	calc Calculator
}

func identity(r surface.Rect) surface.Rect { return r }

// Unroll walks root breadth-first and records a calculator for every leaf.
// Factory nodes are built and their subtree unrolled in place. The splits
// match the ones Layout.Render performs.
func Unroll(root component.Component) *Table {
	t := &Table{index: make(map[component.ID]int)}
	queue := []pending{{node: root, calc: identity}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		switch n := cur.node.(type) {
		case *component.Layout:
			children := n.Children()
			split := surface.Splitter(n.Direction(), len(children))
			parent := cur.calc
			for i, child := range children {
				queue = append(queue, pending{
					node: child,
					calc: func(overall surface.Rect) surface.Rect {
						return split(parent(overall))[i]
					},
				})
			}
		case *component.Leaf:
			t.index[n.ID()] = len(t.entries)
			t.entries = append(t.entries, entry{id: n.ID(), calc: cur.calc})
		case *component.FactoryNode:
			queue = append(queue, pending{node: n.Component(), calc: cur.calc})
		}
	}
	return t
}

// Lookup returns the calculator for id.
func (t *Table) Lookup(id component.ID) (Calculator, bool) {
	i, ok := t.index[id]
	if !ok {
		return nil, false
	}
	return t.entries[i].calc, true
}

// IDs returns the leaf ids in table order.
func (t *Table) IDs() []component.ID {
	ids := make([]component.ID, len(t.entries))
	for i, e := range t.entries {
		ids[i] = e.id
	}
	return ids
}

// Len returns the number of leaves.
func (t *Table) Len() int {
	return len(t.entries)
}

// ComponentsAt returns the ids whose rectangle within overall contains pos,
// in table order.
func (t *Table) ComponentsAt(pos surface.Position, overall surface.Rect) []component.ID {
	var ids []component.ID
	for _, e := range t.entries {
		if e.calc(overall).Contains(pos) {
			ids = append(ids, e.id)
		}
	}
	return ids
}
