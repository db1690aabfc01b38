package grid

import "testing"

func TestInBounds(t *testing.T) {
	g := New(10, 8)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
	}
	for _, c := range cases {
		got := g.InBounds(Cell{c.x, c.y})
		if got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestWrap(t *testing.T) {
	g := New(10, 8)
	cases := []struct {
		in, want Cell
	}{
		{Cell{10, 3}, Cell{0, 3}},
		{Cell{-1, 3}, Cell{9, 3}},
		{Cell{4, 8}, Cell{4, 0}},
		{Cell{4, -1}, Cell{4, 7}},
		{Cell{5, 5}, Cell{5, 5}},
	}
	for _, c := range cases {
		if got := g.Wrap(c.in); got != c.want {
			t.Errorf("Wrap(%v)=%v, want %v", c.in, got, c.want)
		}
	}
}

func TestNeighbors(t *testing.T) {
	g := New(5, 5)
	if n := g.Neighbors(Cell{0, 0}, false); len(n) != 2 {
		t.Errorf("corner without wrap: expected 2 neighbours, got %d", len(n))
	}
	if n := g.Neighbors(Cell{0, 0}, true); len(n) != 4 {
		t.Errorf("corner with wrap: expected 4 neighbours, got %d", len(n))
	}
	if n := g.Neighbors(Cell{2, 2}, false); len(n) != 4 {
		t.Errorf("centre: expected 4 neighbours, got %d", len(n))
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X1: 1, Y1: 1, X2: 3, Y2: 2}
	if !r.Contains(Cell{3, 2}) {
		t.Error("edge cell should be contained")
	}
	if r.Contains(Cell{4, 2}) {
		t.Error("cell outside should not be contained")
	}
}

func TestConnected(t *testing.T) {
	g := New(5, 5)
	// A full vertical wall at x=2 splits the board in two halves.
	wall := func(c Cell) bool { return c.X == 2 }
	if g.Connected(Cell{0, 0}, wall, false) {
		t.Error("board split by a wall should not be connected")
	}
	// With wrap-around the two halves meet across the left/right edge.
	if !g.Connected(Cell{0, 0}, wall, true) {
		t.Error("wrapped board should be connected around the wall")
	}
	if g.Connected(Cell{2, 0}, wall, true) {
		t.Error("blocked start must not be connected")
	}
	none := func(Cell) bool { return false }
	if got := len(g.Reachable(Cell{1, 1}, none, false)); got != g.Area() {
		t.Errorf("empty board: reached %d of %d cells", got, g.Area())
	}
}
