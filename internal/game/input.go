package game

import (
	"naja/internal/system"

	"github.com/gdamore/tcell/v2"
)

// keyToCommand maps a tcell key event to a session command.
func keyToCommand(ev *tcell.EventKey) system.Command {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return system.CmdUp
	case tcell.KeyDown:
		return system.CmdDown
	case tcell.KeyRight:
		return system.CmdRight
	case tcell.KeyLeft:
		return system.CmdLeft
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return system.CmdQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'K', 'w', 'W':
		return system.CmdUp
	case 'j', 'J', 's', 'S':
		return system.CmdDown
	case 'l', 'L', 'd', 'D':
		return system.CmdRight
	case 'h', 'H', 'a', 'A':
		return system.CmdLeft
	case 'p', 'P', ' ':
		return system.CmdPause
	case 'm', 'M':
		return system.CmdMenu
	case 'q', 'Q':
		return system.CmdQuit
	}
	return system.CmdNone
}
