package game

import (
	"fmt"
	"slices"
	"strconv"

	"naja/internal/config"

	"github.com/gdamore/tcell/v2"
)

// menuOption is one row of the start menu: a label and the values it cycles through.
type menuOption struct {
	label  string
	values []string
	index  int
}

func (o *menuOption) value() string { return o.values[o.index] }

func (o *menuOption) cycle(step int) {
	o.index = (o.index + step + len(o.values)) % len(o.values)
}

// speeds are the menu's starting speed presets in cells per second.
var speeds = []struct {
	name  string
	speed float64
}{
	{"Slow", 3},
	{"Normal", 4},
	{"Fast", 6},
	{"Insane", 10},
}

// modeNames are the menu labels for config.Modes, in the same order.
var modeNames = []string{"Classic", "More fruits", "Poisoned apples"}

// menu holds the start menu choices. It only edits a copy of the config.
type menu struct {
	options  []*menuOption
	selected int
}

const (
	optMode = iota
	optDifficulty
	optWalls
	optSpeed
	optApples
	optPalette
)

func newMenu(cfg *config.Config) *menu {
	speedNames := make([]string, len(speeds))
	speedIdx := 1
	for i, s := range speeds {
		speedNames[i] = s.name
		if s.speed == cfg.Snake.InitialSpeed {
			speedIdx = i
		}
	}
	apples := make([]string, 0, cfg.AppleLimit())
	for n := 1; n <= cfg.AppleLimit(); n++ {
		apples = append(apples, strconv.Itoa(n))
	}
	walls := 0
	if !cfg.Rules.ElectricWalls {
		walls = 1
	}
	return &menu{options: []*menuOption{
		optMode:       {label: "Mode", values: modeNames, index: indexOr(config.Modes(), cfg.Rules.Mode)},
		optDifficulty: {label: "Obstacles", values: config.Difficulties(), index: indexOr(config.Difficulties(), cfg.Rules.ObstacleDifficulty)},
		optWalls:      {label: "Walls", values: []string{"Electric", "Wrap around"}, index: walls},
		optSpeed:      {label: "Speed", values: speedNames, index: speedIdx},
		optApples:     {label: "Apples", values: apples, index: indexOr(apples, strconv.Itoa(cfg.Rules.Apples))},
		optPalette:    {label: "Colours", values: config.Palettes, index: indexOr(config.Palettes, cfg.Display.Palette)},
	}}
}

func indexOr(values []string, v string) int {
	return max(0, slices.Index(values, v))
}

// apply returns a copy of base with the menu's choices.
func (m *menu) apply(base *config.Config) *config.Config {
	cfg := *base
	cfg.Rules.Mode = config.Modes()[m.options[optMode].index]
	cfg.Rules.ObstacleDifficulty = m.options[optDifficulty].value()
	cfg.Rules.ElectricWalls = m.options[optWalls].index == 0
	s := speeds[m.options[optSpeed].index].speed
	cfg.Snake.InitialSpeed = s
	cfg.Snake.MinSpeed = min(cfg.Snake.MinSpeed, s)
	cfg.Snake.MaxSpeed = max(cfg.Snake.MaxSpeed, s)
	cfg.Rules.Apples, _ = strconv.Atoi(m.options[optApples].value())
	cfg.Display.Palette = m.options[optPalette].value()
	return &cfg
}

type menuResult uint8

const (
	menuNone menuResult = iota
	menuStart
	menuQuit
)

// handle applies one key press to the menu.
func (m *menu) handle(ev *tcell.EventKey) menuResult {
	switch ev.Key() {
	case tcell.KeyUp:
		m.move(-1)
	case tcell.KeyDown:
		m.move(1)
	case tcell.KeyLeft:
		m.options[m.selected].cycle(-1)
	case tcell.KeyRight:
		m.options[m.selected].cycle(1)
	case tcell.KeyEnter:
		return menuStart
	case tcell.KeyEscape:
		return menuQuit
	}
	switch ev.Rune() {
	case 'k', 'K', 'w', 'W':
		m.move(-1)
	case 'j', 'J', 's', 'S':
		m.move(1)
	case 'h', 'H', 'a', 'A':
		m.options[m.selected].cycle(-1)
	case 'l', 'L', 'd', 'D':
		m.options[m.selected].cycle(1)
	case ' ':
		return menuStart
	case 'q', 'Q':
		return menuQuit
	}
	return menuNone
}

func (m *menu) move(step int) {
	m.selected = (m.selected + step + len(m.options)) % len(m.options)
}

// runMenu shows the start menu until the player starts a game or quits.
// It returns the chosen config, or nil to quit.
func (g *Game) runMenu(events <-chan tcell.Event) *config.Config {
	g.drawMenu()
	for ev := range events {
		switch ev := ev.(type) {
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			switch g.menu.handle(ev) {
			case menuStart:
				return g.menu.apply(g.cfg)
			case menuQuit:
				return nil
			}
		}
		g.drawMenu()
	}
	return nil
}

// drawMenu renders the start menu to the screen.
func (g *Game) drawMenu() {
	g.screen.Clear()
	w, _ := g.screen.Size()

	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorLightGreen).Bold(true)
	normalStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	highlightStyle := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorLightGreen)
	scoreStyle := tcell.StyleDefault.Foreground(tcell.ColorGold)

	centerText := func(y int, text string, style tcell.Style) {
		x := max(0, (w-len([]rune(text)))/2)
		drawScreenText(g.screen, x, y, text, style)
	}

	centerText(1, "🐍 NAJA 🐍", titleStyle)
	if g.player != "" {
		centerText(2, "Welcome, "+g.player, dimStyle)
	}
	centerText(3, fmt.Sprintf("High score: %d", g.highScore()), scoreStyle)

	startY := 5
	for i, o := range g.menu.options {
		prefix := "  "
		style := normalStyle
		if i == g.menu.selected {
			prefix = "► "
			style = highlightStyle
		}
		line := fmt.Sprintf("%s%-10s ◄ %s ►", prefix, o.label, o.value())
		drawScreenText(g.screen, 4, startY+i*2, line, style)
	}

	hintsY := startY + len(g.menu.options)*2 + 1
	centerText(hintsY, "[↑/↓] Choose   [←/→] Change   [Enter] Play   [q] Quit", dimStyle)

	g.screen.Show()
}

// drawScreenText writes a string to the screen at (x, y) with the given style.
func drawScreenText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		screen.SetContent(col, y, ch, nil, style)
		col++
	}
}
