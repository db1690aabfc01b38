package game

import (
	"fmt"
	"time"

	"naja/internal/audio"
	"naja/internal/component"
	"naja/internal/config"
	"naja/internal/render"
	"naja/internal/session"
	"naja/internal/store"
	"naja/internal/system"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// Game is the terminal front end: start menu, real-time play and end screen.
type Game struct {
	screen tcell.Screen
	cfg    *config.Config
	log    *zap.Logger
	store  *store.Store
	sound  audio.Player
	player string
	menu   *menu
	best   int // high score when no store is attached
}

// Option configures a Game.
type Option func(*Game)

// WithStore persists high scores and runs.
func WithStore(st *store.Store) Option { return func(g *Game) { g.store = st } }

// WithAudio plays sound effects through p.
func WithAudio(p audio.Player) Option { return func(g *Game) { g.sound = p } }

// WithPlayerName greets the player by name in the menu.
func WithPlayerName(name string) Option { return func(g *Game) { g.player = name } }

// New creates a Game on the local terminal.
func New(cfg *config.Config, log *zap.Logger, opts ...Option) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(screen, cfg, log, opts...), nil
}

// NewWithScreen creates a Game on an already initialized screen.
func NewWithScreen(screen tcell.Screen, cfg *config.Config, log *zap.Logger, opts ...Option) *Game {
	g := &Game{
		screen: screen,
		cfg:    cfg,
		log:    log,
		sound:  audio.Nop{},
		menu:   newMenu(cfg),
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// outcome is how a round of play ended.
type outcome uint8

const (
	outcomeOver outcome = iota
	outcomeMenu
	outcomeQuit
)

// Run shows the menu and plays rounds until the player quits. The screen is
// finalized on return.
func (g *Game) Run() error {
	done := make(chan struct{})
	defer func() {
		close(done)
		g.screen.Fini()
		g.sound.Close()
	}()
	events := make(chan tcell.Event, 16)
	go pollEvents(g.screen, events, done)

	for {
		cfg := g.runMenu(events)
		if cfg == nil {
			return nil
		}
		sess, err := session.New(cfg, g.log,
			session.WithStore(g.store),
			session.WithPresenters(&audio.System{Player: g.sound}, &renderSystem{r: render.NewRenderer(g.screen, render.ThemeFor(cfg.Display.Palette))}),
		)
		if err != nil {
			return err
		}
		if !g.playRounds(sess, events) {
			return nil
		}
	}
}

// playRounds plays until the player asks for the menu (true) or quits (false).
func (g *Game) playRounds(sess *session.Session, events <-chan tcell.Event) bool {
	for {
		sess.StartRound()
		switch g.play(sess, events) {
		case outcomeQuit:
			return false
		case outcomeMenu:
			return true
		}
		g.best = max(g.best, sess.Score().High)
		switch g.showEndScreen(sess, events) {
		case endQuit:
			return false
		case endMenu:
			return true
		}
	}
}

// play runs one round in real time: key presses are queued as commands and
// the session steps at its own tick interval.
func (g *Game) play(sess *session.Session, events <-chan tcell.Event) outcome {
	timer := time.NewTimer(sess.TickInterval())
	defer timer.Stop()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				g.leave(sess)
				return outcomeQuit
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				g.screen.Sync()
			case *tcell.EventKey:
				sess.Submit(keyToCommand(ev))
			}
		case <-timer.C:
			sess.Step()
			st := sess.State()
			switch st.NextScene {
			case component.SceneQuit:
				g.leave(sess)
				return outcomeQuit
			case component.SceneMenu:
				g.leave(sess)
				return outcomeMenu
			}
			if st.GameOver {
				// Leave the death banner up for a moment.
				time.Sleep(time.Second)
				return outcomeOver
			}
			timer.Reset(sess.TickInterval())
		}
	}
}

// leave records a round the player walked away from.
func (g *Game) leave(sess *session.Session) {
	sess.Abandon()
	g.best = max(g.best, sess.Score().High)
}

func (g *Game) highScore() int {
	if g.store != nil {
		if hs, err := g.store.LoadHighScore(); err == nil {
			return max(hs.Score, g.best)
		}
	}
	return g.best
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed.
func pollEvents(screen tcell.Screen, out chan<- tcell.Event, done <-chan struct{}) {
	defer close(out)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

// renderSystem draws every frame after the logic has run.
type renderSystem struct {
	r *render.Renderer
}

func (*renderSystem) Name() string        { return "render" }
func (*renderSystem) Phase() system.Phase { return system.PhasePresent }

func (s *renderSystem) Update(f *system.Frame) { s.r.Draw(session.Capture(f)) }
