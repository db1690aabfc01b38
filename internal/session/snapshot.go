package session

import (
	"slices"

	"naja/internal/component"
	"naja/internal/grid"
	"naja/internal/system"

	"github.com/gdamore/tcell/v2"
)

// Sprite is one glyph to draw on a board cell.
type Sprite struct {
	Cell  grid.Cell
	Glyph string
	Color tcell.Color
	Order int
}

// Snapshot is everything presentation needs from one frame. It shares no
// memory with the world.
type Snapshot struct {
	Grid     grid.Grid
	Electric bool
	Sprites  []Sprite // sorted by Order, lowest first
	Head     grid.Cell

	Score     int
	High      int
	Length    int
	Speed     float64
	Hunger    int
	HungerMax int

	Paused   bool
	GameOver bool
	Cause    component.DeathCause
	Tick     uint64
}

// Capture builds a Snapshot from f. Cells off the grid are left out.
func Capture(f *system.Frame) Snapshot {
	snap := Snapshot{
		Grid:     f.Grid,
		Electric: f.Rules.ElectricWalls,
		Tick:     f.Tick,
	}
	if f.State != nil {
		snap.Paused = f.State.Paused
		snap.GameOver = f.State.GameOver
		snap.Cause = f.State.DeathReason
	}
	if f.Score != nil {
		snap.Score = f.Score.Current
		snap.High = f.Score.High
	}

	for _, e := range f.World.QueryByComponent(component.CRenderable, component.CPosition) {
		rend := e.Get(component.CRenderable).(component.Renderable)
		pos := e.Get(component.CPosition).(component.Position)

		body, ok := e.Get(component.CBody).(component.Body)
		if !ok {
			snap.add(Sprite{Cell: pos.Cell(), Glyph: rend.Glyph, Color: rend.FGColor, Order: rend.RenderOrder})
			continue
		}
		// Body segments first so the head is drawn on top.
		for i := len(body.Segments) - 1; i >= 1; i-- {
			snap.add(Sprite{Cell: body.Segments[i], Glyph: rend.AltGlyph, Color: rend.AltColor, Order: rend.RenderOrder})
		}
		snap.add(Sprite{Cell: body.Head(), Glyph: rend.Glyph, Color: rend.FGColor, Order: rend.RenderOrder + 1})
	}
	slices.SortStableFunc(snap.Sprites, func(a, b Sprite) int { return a.Order - b.Order })

	if sn, ok := system.SnakeOf(f.World); ok {
		snap.Head = sn.Pos.Cell()
		snap.Length = sn.Body.Len()
		snap.Speed = sn.Vel.Speed
		if h, ok := f.World.Component(sn.ID, component.CHunger).(component.Hunger); ok {
			snap.Hunger, snap.HungerMax = h.Remaining, h.Max
		}
	}
	return snap
}

func (s *Snapshot) add(sp Sprite) {
	if s.Grid.InBounds(sp.Cell) {
		s.Sprites = append(s.Sprites, sp)
	}
}
