package grid

// Reachable returns the set of cells reachable from start by 4-connected steps
// that never enter a blocked cell. start itself is always included.
func (g Grid) Reachable(start Cell, blocked func(Cell) bool, wrap bool) map[Cell]bool {
	visited := map[Cell]bool{start: true}
	queue := []Cell{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbors(c, wrap) {
			if visited[n] || blocked(n) {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}
	return visited
}

// Connected reports whether every in-bounds cell that is not blocked can be
// reached from start. A blocked or out-of-bounds start is never connected.
func (g Grid) Connected(start Cell, blocked func(Cell) bool, wrap bool) bool {
	if !g.InBounds(start) || blocked(start) {
		return false
	}
	free := 0
	for _, c := range g.Cells() {
		if !blocked(c) {
			free++
		}
	}
	return len(g.Reachable(start, blocked, wrap)) == free
}
