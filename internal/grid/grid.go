package grid

// Cell is an integer board coordinate.
type Cell struct {
	X, Y int
}

// Add returns c shifted by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Rect is an axis-aligned rectangle of cells (inclusive edges).
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Contains reports whether c lies inside r.
func (r Rect) Contains(c Cell) bool {
	return c.X >= r.X1 && c.X <= r.X2 && c.Y >= r.Y1 && c.Y <= r.Y2
}

// Grid is the playing field: Width x Height cells.
type Grid struct {
	Width, Height int
}

// New creates a Grid.
func New(width, height int) Grid {
	return Grid{Width: width, Height: height}
}

// Area returns the number of cells.
func (g Grid) Area() int { return g.Width * g.Height }

// Center returns the middle cell.
func (g Grid) Center() Cell { return Cell{X: g.Width / 2, Y: g.Height / 2} }

// InBounds reports whether c is within the grid boundaries.
func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Wrap maps c onto the torus formed by joining opposite edges.
func (g Grid) Wrap(c Cell) Cell {
	return Cell{X: mod(c.X, g.Width), Y: mod(c.Y, g.Height)}
}

func mod(a, n int) int {
	if n <= 0 {
		return a
	}
	return ((a % n) + n) % n
}

// Cells returns every cell in row-major order.
func (g Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.Area())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			cells = append(cells, Cell{X: x, Y: y})
		}
	}
	return cells
}

var offsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Neighbors returns the 4-connected neighbours of c. With wrap, neighbours
// across an edge come back on the opposite side; without it they are dropped.
func (g Grid) Neighbors(c Cell, wrap bool) []Cell {
	out := make([]Cell, 0, 4)
	for _, o := range offsets {
		n := c.Add(o[0], o[1])
		if wrap {
			n = g.Wrap(n)
		} else if !g.InBounds(n) {
			continue
		}
		if n != c {
			out = append(out, n)
		}
	}
	return out
}
