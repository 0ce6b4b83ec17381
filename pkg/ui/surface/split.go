package surface

// Direction is the axis along which a layout splits its area.
type Direction int

const (
	Column Direction = iota // children stacked top to bottom
	Row                     // children side by side, left to right
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Row {
		return "row"
	}
	return "column"
}

// Split divides r into n equal-weight rectangles along the direction's axis.
// When the length is not divisible by n the trailing rectangles get one
// extra cell each, so the parts are disjoint and cover r exactly.
func Split(r Rect, d Direction, n int) []Rect {
	if n <= 0 {
		return nil
	}
	length := r.Height
	if d == Row {
		length = r.Width
	}
	length = max(0, length)

	base, rem := length/n, length%n
	parts := make([]Rect, n)
	offset := 0
	for i := range parts {
		size := base
		if i >= n-rem {
			size++
		}
		if d == Row {
			parts[i] = Rect{X: r.X + offset, Y: r.Y, Width: size, Height: r.Height}
		} else {
			parts[i] = Rect{X: r.X, Y: r.Y + offset, Width: r.Width, Height: size}
		}
		offset += size
	}
	return parts
}

// Splitter returns Split bound to d and n.
func Splitter(d Direction, n int) func(Rect) []Rect {
	return func(r Rect) []Rect {
		return Split(r, d, n)
	}
}
