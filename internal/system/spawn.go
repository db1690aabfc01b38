package system

import (
	"math/rand"

	"naja/internal/component"
	"naja/internal/ecs"
	"naja/internal/factory"
	"naja/internal/grid"

	"go.uber.org/zap"
)

// DefaultMaxSpawnAttempts bounds random sampling before the exhaustive scan.
const DefaultMaxSpawnAttempts = 1000

// fruitKind places one kind of fruit.
type fruitKind struct {
	name   string
	weight float64
	create func(w *ecs.World, c grid.Cell, points int) ecs.EntityID
}

// fruitTable is the weighted mix used when Rules.Fruits is set. Weights sum to 1.
var fruitTable = []fruitKind{
	{"apple", 0.65, factory.NewApple},
	{"grape", 0.25, factory.NewGrape},
	{"orange", 0.10, factory.NewOrange},
}

// pickFruit draws a fruit kind from fruitTable.
func pickFruit(r *rand.Rand) fruitKind {
	x := r.Float64()
	for _, k := range fruitTable {
		if x < k.weight {
			return k
		}
		x -= k.weight
	}
	return fruitTable[len(fruitTable)-1]
}

// SpawnSystem keeps the desired number of fruits on the board and, when
// enabled, occasionally drops a single poisoned apple.
type SpawnSystem struct {
	MaxAttempts int
}

func (*SpawnSystem) Name() string { return "spawn" }
func (*SpawnSystem) Phase() Phase { return PhaseLogic }

func (s *SpawnSystem) Update(f *Frame) {
	occ := Occupied(f.World)

	deficit := f.Rules.Apples - f.World.CountByTag(component.TagApple)
	for range deficit {
		c, ok := s.FreeCell(f, occ)
		if !ok {
			f.logger().Debug("board full, apple spawn skipped", zap.Int("missing", deficit))
			break
		}
		if f.Rules.Fruits {
			pickFruit(f.Rand).create(f.World, c, f.Rules.ApplePoints)
		} else {
			factory.NewApple(f.World, c, f.Rules.ApplePoints)
		}
		occ[c] = true
	}

	if f.Rules.PoisonChance <= 0 || f.World.CountByTag(component.TagPoison) > 0 {
		return
	}
	if f.Rand.Float64() >= f.Rules.PoisonChance {
		return
	}
	if c, ok := s.FreeCell(f, occ); ok {
		factory.NewPoisonedApple(f.World, c)
		f.logger().Debug("poisoned apple spawned", zap.Int("x", c.X), zap.Int("y", c.Y))
	}
}

// FreeCell samples a uniformly random cell not in occ. After MaxAttempts
// misses it scans every cell instead; ok is false only when the board is full.
func (s *SpawnSystem) FreeCell(f *Frame, occ map[grid.Cell]bool) (grid.Cell, bool) {
	attempts := s.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxSpawnAttempts
	}
	for range attempts {
		c := grid.Cell{X: f.Rand.Intn(f.Grid.Width), Y: f.Rand.Intn(f.Grid.Height)}
		if !occ[c] {
			return c, true
		}
	}

	var free []grid.Cell
	for _, c := range f.Grid.Cells() {
		if !occ[c] {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return grid.Cell{}, false
	}
	return free[f.Rand.Intn(len(free))], true
}
