package game

import (
	"fmt"

	"naja/internal/component"
	"naja/internal/session"

	"github.com/gdamore/tcell/v2"
)

type endChoice uint8

const (
	endRetry endChoice = iota
	endMenu
	endQuit
)

var causeText = map[component.DeathCause]string{
	component.CauseWall:       "the electric wall",
	component.CauseObstacle:   "a rock",
	component.CauseSelf:       "your own tail",
	component.CausePoison:     "a poisoned apple",
	component.CauseStarvation: "hunger",
}

// showEndScreen renders the round summary and waits for the player's choice.
func (g *Game) showEndScreen(sess *session.Session, events <-chan tcell.Event) endChoice {
	snap := sess.Snapshot()
	newHigh := snap.Score > 0 && snap.Score >= snap.High

	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gold := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	gray := tcell.StyleDefault.Foreground(tcell.ColorGray)
	dim := tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	green := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	red := tcell.StyleDefault.Foreground(tcell.ColorRed)

	draw := func() {
		g.screen.Clear()
		sw, _ := g.screen.Size()

		sep := func(y int) {
			for x := 0; x < sw; x++ {
				g.screen.SetContent(x, y, '─', nil, gray)
			}
		}
		// label prints a left-aligned key at column 2 and value at column 18.
		label := func(y int, l, v string) {
			g.putText(2, y, l, dim)
			g.putText(18, y, v, white)
		}

		y := 1
		sep(y)
		y += 2

		g.putText(2, y, "THE SNAKE IS DOWN", gold)
		if newHigh {
			badge := "[NEW HIGH SCORE]"
			g.putText(sw-len(badge)-1, y, badge, green)
		}
		y += 2

		label(y, "Score:", fmt.Sprintf("%d", snap.Score))
		y++
		label(y, "High Score:", fmt.Sprintf("%d", snap.High))
		y++
		label(y, "Length:", fmt.Sprintf("%d", snap.Length))
		y++
		label(y, "Ticks Survived:", fmt.Sprintf("%d", snap.Tick))
		y += 2
		if text, ok := causeText[snap.Cause]; ok {
			label(y, "Killed By:", text)
			y += 2
		}

		sep(y)
		y += 2

		g.putText(2, y, "[R] Try Again", green)
		g.putText(18, y, "[M] Menu", white)
		g.putText(30, y, "[Q] Quit", red)

		g.screen.Show()
	}

	draw()
	for ev := range events {
		switch ev := ev.(type) {
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'r', 'R':
					return endRetry
				case 'm', 'M':
					return endMenu
				case 'q', 'Q':
					return endQuit
				}
			case tcell.KeyEnter:
				return endRetry
			case tcell.KeyEscape:
				return endQuit
			}
		}
		draw()
	}
	return endQuit
}

// putText writes a string to the screen at (x, y), one column per rune.
func (g *Game) putText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		g.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
