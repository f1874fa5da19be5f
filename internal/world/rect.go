package world

// Rect is an axis-aligned block of cells.
type Rect struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions, zero or less means empty
}

// Square returns the (2r+1)x(2r+1) block centered on c.
func Square(c Position, r int) Rect {
	return Rect{X: c.X - r, Y: c.Y - r, Width: 2*r + 1, Height: 2*r + 1}
}

// Empty reports whether the rect holds no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if the given cell is inside the rect.
func (r Rect) Contains(p Position) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Intersect returns the overlap of two rects, which may be empty.
func (r Rect) Intersect(other Rect) Rect {
	x0, y0 := max(r.X, other.X), max(r.Y, other.Y)
	x1 := min(r.X+r.Width, other.X+other.Width)
	y1 := min(r.Y+r.Height, other.Y+other.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Positions lists the cells row by row, top to bottom.
func (r Rect) Positions() []Position {
	if r.Empty() {
		return nil
	}
	cells := make([]Position, 0, r.Width*r.Height)
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			cells = append(cells, Position{X: x, Y: y})
		}
	}
	return cells
}
