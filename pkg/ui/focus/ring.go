// Package focus provides the cyclic focus cursor used by page contexts.
package focus

// Ring is a cyclic list of focus targets with a cursor. The cursor always
// points at a valid element of a non-empty ring.
type Ring[T comparable] struct {
	items   []T
	current int
}

// NewRing creates a ring over items with the cursor on the first element.
// An empty ring has no current element.
func NewRing[T comparable](items ...T) *Ring[T] {
	return &Ring[T]{items: append([]T(nil), items...)}
}

// Len returns the number of elements in the ring.
func (r *Ring[T]) Len() int {
	return len(r.items)
}

// Index returns the cursor position.
func (r *Ring[T]) Index() int {
	return r.current
}

// Current returns the element under the cursor.
func (r *Ring[T]) Current() (T, bool) {
	if len(r.items) == 0 {
		var zero T
		return zero, false
	}
	return r.items[r.current], true
}

// Items returns a copy of the ring contents in order.
func (r *Ring[T]) Items() []T {
	return append([]T(nil), r.items...)
}

// Next advances the cursor, wrapping to the first element.
func (r *Ring[T]) Next() {
	if len(r.items) == 0 {
		return
	}
	r.current = (r.current + 1) % len(r.items)
}

// Prev moves the cursor back, wrapping to the last element.
func (r *Ring[T]) Prev() {
	if len(r.items) == 0 {
		return
	}
	r.current = (r.current - 1 + len(r.items)) % len(r.items)
}

// Reset moves the cursor to the first element.
func (r *Ring[T]) Reset() {
	r.current = 0
}
