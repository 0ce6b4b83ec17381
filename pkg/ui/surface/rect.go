// Package surface provides the character grid components draw into and the
// rectangle arithmetic used to lay them out.
package surface

// Position is a cell coordinate.
type Position struct {
	X, Y int
}

// Rect is a positioned rectangle in cell coordinates.
type Rect struct {
	X, Y, Width, Height int
}

// NewRect creates a rect from position and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area returns the number of cells covered.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.Width * r.Height
}

// Contains returns true if the position is inside the rect.
func (r Rect) Contains(p Position) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Intersects returns true if the two rects overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Intersection returns the overlapping area of two rects.
func (r Rect) Intersection(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	x2 := min(r.X+r.Width, other.X+other.Width)
	y2 := min(r.Y+r.Height, other.Y+other.Height)
	if x2 <= x || y2 <= y {
		return Rect{}
	}
	return Rect{X: x, Y: y, Width: x2 - x, Height: y2 - y}
}

// Inset returns a rect shrunk by the given amounts.
func (r Rect) Inset(top, right, bottom, left int) Rect {
	return Rect{
		X:      r.X + left,
		Y:      r.Y + top,
		Width:  max(0, r.Width-left-right),
		Height: max(0, r.Height-top-bottom),
	}
}

// SplitLast cuts n rows off the bottom of r, returning the remaining body
// and the cut strip. n is clamped to r.Height.
func (r Rect) SplitLast(n int) (body, strip Rect) {
	n = max(0, min(n, r.Height))
	body = Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height - n}
	strip = Rect{X: r.X, Y: r.Y + r.Height - n, Width: r.Width, Height: n}
	return body, strip
}

// Centered returns the popup rectangle used for overlays: inset a quarter of
// the width on each side and a third of the height from the top, half as
// wide and a third as tall as r.
func (r Rect) Centered() Rect {
	return Rect{
		X:      r.X + r.Width/4,
		Y:      r.Y + r.Height/3,
		Width:  r.Width / 2,
		Height: r.Height / 3,
	}
}
