package game

import (
	"testing"
	"time"

	"naja/internal/config"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func key(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func TestMenuAppliesChoices(t *testing.T) {
	base := config.Default()
	m := newMenu(base)

	m.handle(key('l'))                                           // mode: classic -> fruits
	m.handle(key('j'))                                           // obstacles
	m.handle(key('l'))                                           // None -> Easy
	m.handle(key('j'))                                           // walls
	m.handle(key('l'))                                           // electric -> wrap
	m.handle(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)) // speed
	m.handle(key('l'))                                           // Normal -> Fast

	cfg := m.apply(base)
	assert.Equal(t, config.ModeFruits, cfg.Rules.Mode)
	assert.Equal(t, "Easy", cfg.Rules.ObstacleDifficulty)
	assert.False(t, cfg.Rules.ElectricWalls)
	assert.InDelta(t, 6.0, cfg.Snake.InitialSpeed, 1e-9)
	require.NoError(t, cfg.Validate())

	assert.True(t, base.Rules.ElectricWalls, "base config is left alone")
	assert.Equal(t, "None", base.Rules.ObstacleDifficulty)
	assert.Equal(t, config.ModeClassic, base.Rules.Mode)
}

func TestMenuWrapsAndQuits(t *testing.T) {
	m := newMenu(config.Default())
	m.handle(key('k'))
	assert.Equal(t, len(m.options)-1, m.selected)
	assert.Equal(t, menuStart, m.handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	assert.Equal(t, menuQuit, m.handle(key('q')))
}

func TestMenuInsaneSpeedRaisesMax(t *testing.T) {
	base := config.Default()
	base.Snake.MaxSpeed = 5
	base.Snake.InitialSpeed = 4
	m := newMenu(base)
	m.selected = optSpeed
	m.handle(key('l'))
	m.handle(key('l'))

	cfg := m.apply(base)
	assert.InDelta(t, 10.0, cfg.Snake.InitialSpeed, 1e-9)
	assert.NoError(t, cfg.Validate())
}

func TestMenuSlowSpeedLowersFloor(t *testing.T) {
	base := config.Default()
	base.Snake.MinSpeed = 3.5
	m := newMenu(base)
	m.selected = optSpeed
	m.handle(key('h')) // Normal -> Slow

	cfg := m.apply(base)
	assert.InDelta(t, 3.0, cfg.Snake.MinSpeed, 1e-9)
	assert.NoError(t, cfg.Validate())
}

func TestMenuModeRow(t *testing.T) {
	base := config.Default()
	base.Rules.Mode = config.ModePoison
	m := newMenu(base)
	assert.Equal(t, "Poisoned apples", m.options[optMode].value())
	m.handle(key('l'))
	assert.Equal(t, config.ModeClassic, m.apply(base).Rules.Mode)
}

func TestRunPlaysUntilQuit(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 30)

	cfg := config.Default()
	cfg.Grid.Width, cfg.Grid.Height = 10, 10
	cfg.Snake.InitialSpeed, cfg.Snake.MaxSpeed = 50, 50
	g := NewWithScreen(screen, cfg, zap.NewNop())

	done := make(chan error, 1)
	go func() { done <- g.Run() }()

	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	time.Sleep(100 * time.Millisecond)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("game did not quit")
	}
}
