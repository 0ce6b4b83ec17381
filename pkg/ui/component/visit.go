package component

// VisitAs calls fn for every leaf in c. The first argument is the leaf's
// behavior asserted to T; ok is false when the behavior is not a T.
func VisitAs[T any](c Component, fn func(v T, ok bool)) {
	c.Visit(func(l *Leaf) bool {
		v, ok := l.behavior.(T)
		fn(v, ok)
		return true
	})
}

// FindLeaf returns the leaf with the given id.
func FindLeaf(root Component, id ID) (*Leaf, bool) {
	var found *Leaf
	root.Visit(func(l *Leaf) bool {
		if l.id == id {
			found = l
			return false
		}
		return true
	})
	return found, found != nil
}

// Walk calls fn for every node reachable from root, parents before
// children. Factory subtrees are built. Walk stops when fn returns false.
func Walk(root Component, fn func(Component) bool) bool {
	if !fn(root) {
		return false
	}
	switch n := root.(type) {
	case *Layout:
		for _, child := range n.children {
			if !Walk(child, fn) {
				return false
			}
		}
	case *FactoryNode:
		return Walk(n.Component(), fn)
	}
	return true
}

// DuplicateID returns an id that appears more than once under root.
func DuplicateID(root Component) (ID, bool) {
	seen := make(map[ID]struct{})
	var dup ID
	found := false
	Walk(root, func(c Component) bool {
		var id ID
		switch n := c.(type) {
		case *Layout:
			id = n.id
		case *Leaf:
			id = n.id
		default:
			return true
		}
		if _, ok := seen[id]; ok {
			dup, found = id, true
			return false
		}
		seen[id] = struct{}{}
		return true
	})
	return dup, found
}
