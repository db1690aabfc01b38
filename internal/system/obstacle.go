package system

import (
	"naja/internal/component"
	"naja/internal/ecs"
	"naja/internal/factory"
	"naja/internal/grid"

	"go.uber.org/zap"
)

// Safe zone around the snake's start where no obstacle is placed.
const (
	DefaultSafeHalfWidth  = 7
	DefaultSafeHalfHeight = 1
)

// ObstacleSystem places the round's obstacles on its first run. Every
// placement is checked so that the free cells stay one connected region
// containing the snake's head.
type ObstacleSystem struct {
	SafeHalfWidth  int
	SafeHalfHeight int

	done   bool
	placed []ecs.EntityID
}

func (*ObstacleSystem) Name() string { return "obstacles" }
func (*ObstacleSystem) Phase() Phase { return PhaseLogic }

// Reset arms the system for the next round.
func (s *ObstacleSystem) Reset() {
	s.done = false
	s.placed = nil
}

// Placed returns the obstacles created this round.
func (s *ObstacleSystem) Placed() []ecs.EntityID { return s.placed }

func (s *ObstacleSystem) Update(f *Frame) {
	if s.done {
		return
	}
	s.done = true
	s.placed = s.Generate(f, f.Rules.ObstacleCount)
}

// Generate places up to count obstacles and returns their entities.
func (s *ObstacleSystem) Generate(f *Frame, count int) []ecs.EntityID {
	if count <= 0 {
		return nil
	}
	snake, ok := SnakeOf(f.World)
	if !ok {
		f.logger().Warn("obstacle generation without a snake")
		return nil
	}
	g := f.Grid
	wrap := !f.Rules.ElectricWalls
	head := snake.Body.Head()

	solid := make(map[grid.Cell]bool)
	for c := range cellsOf(f.World, component.TagObstacle) {
		solid[c] = true
	}
	for _, c := range snake.Body.Segments[1:] {
		solid[c] = true
	}
	taken := Occupied(f.World)
	blocked := func(c grid.Cell) bool { return solid[c] }

	safe := s.safeZone(head)
	candidates := make([]grid.Cell, 0, g.Area())
	for _, c := range g.Cells() {
		if !taken[c] && !safe.Contains(c) {
			candidates = append(candidates, c)
		}
	}
	f.Rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	var ids []ecs.EntityID
	rejected := 0
	for _, c := range candidates {
		if len(ids) == count {
			break
		}
		if traps(g, c, solid, wrap) {
			rejected++
			continue
		}
		solid[c] = true
		if !g.Connected(head, blocked, wrap) {
			delete(solid, c)
			rejected++
			continue
		}
		ids = append(ids, factory.NewObstacle(f.World, c))
	}

	log := f.logger().With(zap.Int("requested", count), zap.Int("placed", len(ids)), zap.Int("rejected", rejected))
	if len(ids) < count {
		log.Info("obstacle generation stopped early, no safe cells left")
	} else {
		log.Debug("obstacles generated")
	}
	return ids
}

func (s *ObstacleSystem) safeZone(head grid.Cell) grid.Rect {
	hw, hh := s.SafeHalfWidth, s.SafeHalfHeight
	if hw == 0 && hh == 0 {
		hw, hh = DefaultSafeHalfWidth, DefaultSafeHalfHeight
	}
	return grid.Rect{X1: head.X - hw, Y1: head.Y - hh, X2: head.X + hw, Y2: head.Y + hh}
}

// traps reports whether blocking c would leave a free neighbour with three or
// more blocked sides, a dead end the snake could only leave by reversing.
func traps(g grid.Grid, c grid.Cell, solid map[grid.Cell]bool, wrap bool) bool {
	for _, n := range g.Neighbors(c, wrap) {
		if solid[n] {
			continue
		}
		around := g.Neighbors(n, wrap)
		closed := 4 - len(around)
		for _, m := range around {
			if m == c || solid[m] {
				closed++
			}
		}
		if closed >= 3 {
			return true
		}
	}
	return false
}
