package render

import (
	"naja/internal/session"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the number of rows reserved below the board.
const hudRows = 3

// Renderer draws session snapshots onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	view   Viewport
	theme  Theme
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen, theme Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// Draw renders the board, its sprites, the HUD and any overlay, then shows
// the screen.
func (r *Renderer) Draw(snap session.Snapshot) {
	w, h := r.screen.Size()
	r.view.Frame(snap.Grid, snap.Head, w, h-hudRows)

	r.screen.Clear()
	r.drawBoard(snap)
	r.drawSprites(snap)
	r.DrawHUD(snap)
	switch {
	case snap.Paused:
		r.drawBanner("PAUSED  [P] resume")
	case snap.GameOver:
		r.drawBanner(deathMessage(snap.Cause))
	}
	r.screen.Show()
}

// drawBoard fills the playing field and its one-cell edge.
func (r *Renderer) drawBoard(snap session.Snapshot) {
	floor := tcell.StyleDefault.Background(r.theme.Floor)
	edge := r.theme.WrapEdge
	if snap.Electric {
		edge = r.theme.Wall
	}
	edgeStyle := tcell.StyleDefault.Foreground(r.theme.Accent)

	for y := -1; y <= snap.Grid.Height; y++ {
		for x := -1; x <= snap.Grid.Width; x++ {
			sx, sy, ok := r.view.ToScreen(x, y)
			if !ok {
				continue
			}
			if x < 0 || y < 0 || x == snap.Grid.Width || y == snap.Grid.Height {
				r.putGlyph(sx, sy, edge, edgeStyle)
				continue
			}
			r.screen.SetContent(sx, sy, ' ', nil, floor)
			r.screen.SetContent(sx+1, sy, ' ', nil, floor)
		}
	}
}

// drawSprites renders sprites in snapshot order (lower Order drawn first).
func (r *Renderer) drawSprites(snap session.Snapshot) {
	for _, sp := range snap.Sprites {
		sx, sy, ok := r.view.ToScreen(sp.Cell.X, sp.Cell.Y)
		if !ok {
			continue
		}
		style := tcell.StyleDefault.Foreground(sp.Color).Background(r.theme.Floor)
		r.putGlyph(sx, sy, sp.Glyph, style)
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

// drawBanner writes text centred on the board's middle row.
func (r *Renderer) drawBanner(text string) {
	w, h := r.screen.Size()
	x := max(0, (w-runewidth.StringWidth(text))/2)
	style := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(r.theme.Accent).Bold(true)
	r.drawText(x, (h-hudRows)/2, text, style)
}
