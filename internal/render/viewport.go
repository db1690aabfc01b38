package render

import "naja/internal/grid"

// Viewport maps board cells to terminal cells. Each cell is two columns
// wide and the board is drawn inside a one-cell edge. A board that fits is
// centred; a larger one scrolls to keep focus in view.
type Viewport struct {
	Cols, Rows int // terminal area available for the board
	originX    int // screen column of board x = 0
	originY    int // screen row of board y = 0
}

// Frame positions the board for a terminal area of cols x rows.
func (v *Viewport) Frame(g grid.Grid, focus grid.Cell, cols, rows int) {
	v.Cols, v.Rows = cols, rows
	v.originX = 2 * axisOrigin(g.Width, focus.X, cols/2)
	v.originY = axisOrigin(g.Height, focus.Y, rows)
}

// axisOrigin returns the screen offset, in cells, of board index 0 along one
// axis of n cells shown in a span of view cells. The edge takes one cell on
// either side.
func axisOrigin(n, focus, view int) int {
	if n+2 <= view {
		return (view - n) / 2
	}
	// Scroll: put focus in the middle, clamped so the edges stay on screen
	// when they are reached.
	o := view/2 - focus
	return min(1, max(o, view-n-1))
}

// ToScreen converts board (x, y) to screen (sx, sy). visible is false when
// any part of the two-column cell falls outside the viewport.
func (v *Viewport) ToScreen(x, y int) (sx, sy int, visible bool) {
	sx = v.originX + 2*x
	sy = v.originY + y
	visible = sx >= 0 && sx+1 < v.Cols && sy >= 0 && sy < v.Rows
	return
}
