package system

import (
	"fmt"

	"naja/internal/component"
	"naja/internal/grid"

	"go.uber.org/zap"
)

// ValidationSystem checks board invariants after the logic systems have run
// and logs every violation. It never changes the world.
type ValidationSystem struct {
	Checks    int
	Anomalies int
}

func (*ValidationSystem) Name() string { return "validation" }
func (*ValidationSystem) Phase() Phase { return PhaseLogic }

func (v *ValidationSystem) Update(f *Frame) {
	v.Checks++
	for _, problem := range Validate(f) {
		v.Anomalies++
		f.logger().Warn("invariant violated", zap.String("problem", problem), zap.Uint64("tick", f.Tick))
	}
}

// Validate returns a description of every broken board invariant. It is
// meant for live rounds; a dead snake may legitimately overlap itself or
// sit outside the grid.
func Validate(f *Frame) []string {
	var problems []string

	snakes := f.World.CountByTag(component.TagSnake)
	if snakes != 1 {
		problems = append(problems, fmt.Sprintf("expected 1 snake, found %d", snakes))
	}

	solid := make(map[grid.Cell]string)
	claim := func(c grid.Cell, what string) {
		if !f.Grid.InBounds(c) {
			problems = append(problems, fmt.Sprintf("%s at %v is outside the grid", what, c))
		}
		if prev, ok := solid[c]; ok {
			problems = append(problems, fmt.Sprintf("%s and %s share cell %v", prev, what, c))
			return
		}
		solid[c] = what
	}

	if s, ok := SnakeOf(f.World); ok {
		if !s.Vel.Valid() {
			problems = append(problems, fmt.Sprintf("snake velocity (%d,%d) is not a unit direction", s.Vel.DX, s.Vel.DY))
		}
		if s.Pos.Cell() != s.Body.Head() {
			problems = append(problems, fmt.Sprintf("snake position %v differs from body head %v", s.Pos.Cell(), s.Body.Head()))
		}
		for _, c := range s.Body.Segments {
			claim(c, "snake")
		}
	}
	for c := range cellsOf(f.World, component.TagObstacle) {
		claim(c, "obstacle")
	}
	if n := f.World.CountByTag(component.TagObstacle); n != len(cellsOf(f.World, component.TagObstacle)) {
		problems = append(problems, "two obstacles share a cell")
	}

	apples := cellsOf(f.World, component.TagApple)
	for c := range apples {
		if what, ok := solid[c]; ok {
			problems = append(problems, fmt.Sprintf("apple at %v sits on %s", c, what))
		}
	}

	free := 0
	occ := Occupied(f.World)
	for _, c := range f.Grid.Cells() {
		if !occ[c] {
			free++
		}
	}
	// Free cells left after spawning plus the apples themselves is what the
	// spawner had to work with.
	want := min(f.Rules.Apples, free+len(apples))
	if got := f.World.CountByTag(component.TagApple); got != want {
		problems = append(problems, fmt.Sprintf("expected %d apples, found %d", want, got))
	}
	return problems
}
