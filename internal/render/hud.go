package render

import (
	"fmt"
	"strings"

	"naja/internal/component"
	"naja/internal/session"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawHUD renders the status bar at the bottom of the screen.
func (r *Renderer) DrawHUD(snap session.Snapshot) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, tcell.ColorGray)

	status := fmt.Sprintf("Score: %d  High: %d  Length: %d  Speed: %.1f",
		snap.Score, snap.High, snap.Length, snap.Speed)
	if snap.HungerMax > 0 {
		status += "  Food: " + meter(snap.Hunger, snap.HungerMax, 10)
	}
	r.drawText(0, hudY+1, status, tcell.StyleDefault.Foreground(r.theme.Text))

	keys := "[←↑→↓/WASD] steer  [P] pause  [M] menu  [Q] quit"
	r.drawText(0, hudY+2, keys, tcell.StyleDefault.Foreground(tcell.ColorGray))
}

// meter draws value/limit as a bar of width cells.
func meter(value, limit, width int) string {
	filled := 0
	if limit > 0 {
		filled = min(width, (value*width+limit-1)/limit)
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("·", width-filled) + "]"
}

func deathMessage(cause component.DeathCause) string {
	switch cause {
	case component.CauseWall:
		return "Zapped by the electric wall"
	case component.CauseObstacle:
		return "Crashed into a rock"
	case component.CauseSelf:
		return "Bit your own tail"
	case component.CausePoison:
		return "Ate a poisoned apple"
	case component.CauseStarvation:
		return "Starved"
	}
	return "Game over"
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(1, runewidth.RuneWidth(ch))
	}
}
