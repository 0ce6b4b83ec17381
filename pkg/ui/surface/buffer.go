package surface

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/panekit/pkg/ui/backend"
)

// Cell is a single character cell.
type Cell struct {
	Rune  rune
	Style backend.Style
}

var blankCell = Cell{Rune: ' ', Style: backend.DefaultStyle()}

// Buffer is the drawing surface for one frame: a grid of styled cells with
// dirty tracking so the frame loop only flushes what changed.
type Buffer struct {
	cells  []Cell
	width  int
	height int

	// front holds the cells as last flushed; nil until the first Flush.
	front []Cell

	dirty      []bool
	dirtyCount int
	dirtyRect  Rect
}

// NewBuffer creates a blank buffer with the given dimensions.
func NewBuffer(w, h int) *Buffer {
	w, h = max(0, w), max(0, h)
	b := &Buffer{
		cells:  make([]Cell, w*h),
		dirty:  make([]bool, w*h),
		width:  w,
		height: h,
	}
	for i := range b.cells {
		b.cells[i] = blankCell
	}
	b.MarkAllDirty()
	return b
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (w, h int) {
	return b.width, b.height
}

// Bounds returns the rect covering the whole buffer.
func (b *Buffer) Bounds() Rect {
	return Rect{Width: b.width, Height: b.height}
}

// Resize changes the buffer dimensions, preserving content where possible.
func (b *Buffer) Resize(w, h int) {
	w, h = max(0, w), max(0, h)
	if w == b.width && h == b.height {
		return
	}
	cells := make([]Cell, w*h)
	for i := range cells {
		cells[i] = blankCell
	}
	for y := 0; y < min(h, b.height); y++ {
		for x := 0; x < min(w, b.width); x++ {
			cells[y*w+x] = b.cells[y*b.width+x]
		}
	}
	b.cells = cells
	b.front = nil
	b.dirty = make([]bool, w*h)
	b.width = w
	b.height = h
	b.MarkAllDirty()
}

// Clear fills the buffer with spaces and default style.
func (b *Buffer) Clear() {
	b.Fill(b.Bounds(), ' ', backend.DefaultStyle())
}

// ClearRect fills a region with spaces and default style.
func (b *Buffer) ClearRect(r Rect) {
	b.Fill(r, ' ', backend.DefaultStyle())
}

// Get returns the cell at (x, y), or a blank cell if out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return blankCell
	}
	return b.cells[y*b.width+x]
}

// Set writes a rune with style at (x, y). Out-of-bounds writes are dropped.
func (b *Buffer) Set(x, y int, r rune, s backend.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.put(x, y, Cell{Rune: r, Style: s})
}

// SetString writes s starting at (x, y), clipped to the buffer. Wide runes
// occupy two columns. Returns the number of columns advanced.
func (b *Buffer) SetString(x, y int, s string, style backend.Style) int {
	return b.SetStringIn(b.Bounds(), x, y, s, style)
}

// SetStringIn writes s starting at (x, y), clipped to clip and the buffer.
// Returns the number of columns advanced.
func (b *Buffer) SetStringIn(clip Rect, x, y int, s string, style backend.Style) int {
	clip = clip.Intersection(b.Bounds())
	if y < clip.Y || y >= clip.Y+clip.Height {
		return 0
	}
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > clip.X+clip.Width {
			break
		}
		if col >= clip.X {
			b.put(col, y, Cell{Rune: r, Style: style})
			if w == 2 {
				b.put(col+1, y, Cell{Rune: ' ', Style: style})
			}
		}
		col += w
	}
	return col - x
}

// Fill fills a region with a rune and style, clipped to the buffer.
func (b *Buffer) Fill(r Rect, ch rune, s backend.Style) {
	r = r.Intersection(b.Bounds())
	cell := Cell{Rune: ch, Style: s}
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			b.put(x, y, cell)
		}
	}
}

// ApplyStyle patches the style of every cell in r without touching runes.
func (b *Buffer) ApplyStyle(r Rect, s backend.Style) {
	r = r.Intersection(b.Bounds())
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			c := b.cells[y*b.width+x]
			c.Style = c.Style.Patch(s)
			b.put(x, y, c)
		}
	}
}

// DrawBox draws a border around r using box-drawing characters.
func (b *Buffer) DrawBox(r Rect, s backend.Style) {
	if r.Width < 2 || r.Height < 2 {
		return
	}

	b.Set(r.X, r.Y, '┌', s)
	b.Set(r.X+r.Width-1, r.Y, '┐', s)
	b.Set(r.X, r.Y+r.Height-1, '└', s)
	b.Set(r.X+r.Width-1, r.Y+r.Height-1, '┘', s)

	for x := r.X + 1; x < r.X+r.Width-1; x++ {
		b.Set(x, r.Y, '─', s)
		b.Set(x, r.Y+r.Height-1, '─', s)
	}
	for y := r.Y + 1; y < r.Y+r.Height-1; y++ {
		b.Set(r.X, y, '│', s)
		b.Set(r.X+r.Width-1, y, '│', s)
	}
}

// DrawTitledBox draws a box with title written into its top edge.
// Returns the interior rect.
func (b *Buffer) DrawTitledBox(r Rect, title string, s backend.Style) Rect {
	b.DrawBox(r, s)
	if title != "" && r.Width > 2 {
		b.SetStringIn(Rect{X: r.X + 1, Y: r.Y, Width: r.Width - 2, Height: 1}, r.X+1, r.Y, title, s)
	}
	return r.Inset(1, 1, 1, 1)
}

// String renders the buffer as newline-separated rows, for tests and logs.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.width; x++ {
			sb.WriteRune(b.cells[y*b.width+x].Rune)
		}
	}
	return sb.String()
}

// Row returns row y as a string, or "" if out of bounds.
func (b *Buffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		sb.WriteRune(b.cells[y*b.width+x].Rune)
	}
	return sb.String()
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Buffer) put(x, y int, c Cell) {
	idx := y*b.width + x
	if b.cells[idx] != c {
		b.cells[idx] = c
		b.markCellDirty(x, y, idx)
	}
}

func (b *Buffer) markCellDirty(x, y, idx int) {
	if b.dirty[idx] {
		return
	}
	b.dirty[idx] = true
	b.dirtyCount++

	if b.dirtyCount == 1 {
		b.dirtyRect = Rect{X: x, Y: y, Width: 1, Height: 1}
		return
	}
	if x < b.dirtyRect.X {
		b.dirtyRect.Width += b.dirtyRect.X - x
		b.dirtyRect.X = x
	} else if x >= b.dirtyRect.X+b.dirtyRect.Width {
		b.dirtyRect.Width = x - b.dirtyRect.X + 1
	}
	if y < b.dirtyRect.Y {
		b.dirtyRect.Height += b.dirtyRect.Y - y
		b.dirtyRect.Y = y
	} else if y >= b.dirtyRect.Y+b.dirtyRect.Height {
		b.dirtyRect.Height = y - b.dirtyRect.Y + 1
	}
}

// MarkAllDirty marks the entire buffer as dirty.
func (b *Buffer) MarkAllDirty() {
	for i := range b.dirty {
		b.dirty[i] = true
	}
	b.dirtyCount = len(b.dirty)
	b.dirtyRect = b.Bounds()
}

// ClearDirty resets all dirty flags.
func (b *Buffer) ClearDirty() {
	clear(b.dirty)
	b.dirtyCount = 0
	b.dirtyRect = Rect{}
}

// IsDirty returns true if any cells have changed.
func (b *Buffer) IsDirty() bool {
	return b.dirtyCount > 0
}

// DirtyCount returns the number of dirty cells.
func (b *Buffer) DirtyCount() int {
	return b.dirtyCount
}

// DirtyRect returns the bounding box of dirty cells.
func (b *Buffer) DirtyRect() Rect {
	return b.dirtyRect
}

// ForEachDirtyCell calls fn for each dirty cell.
func (b *Buffer) ForEachDirtyCell(fn func(x, y int, cell Cell)) {
	if b.dirtyCount == 0 {
		return
	}
	r := b.dirtyRect
	for y := r.Y; y < r.Y+r.Height && y < b.height; y++ {
		for x := r.X; x < r.X+r.Width && x < b.width; x++ {
			idx := y*b.width + x
			if b.dirty[idx] {
				fn(x, y, b.cells[idx])
			}
		}
	}
}

// Flush writes cells that differ from the previous flush to target, clears
// the dirty set and returns the number of cells written. A cell changed and
// then restored within a frame is not written. The first flush after
// creation or Resize writes every cell.
func (b *Buffer) Flush(target backend.RenderTarget) int {
	if !b.IsDirty() {
		return 0
	}
	written := 0
	if b.front == nil {
		b.front = make([]Cell, len(b.cells))
		for y := 0; y < b.height; y++ {
			for x := 0; x < b.width; x++ {
				idx := y*b.width + x
				c := b.cells[idx]
				target.SetContent(x, y, c.Rune, nil, c.Style)
				b.front[idx] = c
				written++
			}
		}
	} else {
		b.ForEachDirtyCell(func(x, y int, c Cell) {
			idx := y*b.width + x
			if b.front[idx] == c {
				return
			}
			target.SetContent(x, y, c.Rune, nil, c.Style)
			b.front[idx] = c
			written++
		})
	}
	b.ClearDirty()
	return written
}
