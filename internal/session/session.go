package session

import (
	"fmt"
	"math/rand"
	"time"

	"naja/internal/component"
	"naja/internal/config"
	"naja/internal/ecs"
	"naja/internal/event"
	"naja/internal/factory"
	"naja/internal/grid"
	"naja/internal/store"
	"naja/internal/system"

	"go.uber.org/zap"
)

// Session runs rounds of the game without any terminal attached. Front ends
// feed it commands, call Step at TickInterval and draw Snapshot.
type Session struct {
	cfg   *config.Config
	log   *zap.Logger
	store *store.Store

	frame     *system.Frame
	sched     *system.Scheduler
	input     *system.InputSystem
	obstacles *system.ObstacleSystem
	validator *system.ValidationSystem

	presenters []system.System

	run       store.Run
	recorded  bool
	roundHigh int // high score when the round started
}

// Option configures a Session.
type Option func(*Session)

// WithStore persists the high score and the run log in st.
func WithStore(st *store.Store) Option {
	return func(s *Session) { s.store = st }
}

// WithPresenters appends present-phase systems (audio, rendering) after the
// logic systems.
func WithPresenters(p ...system.System) Option {
	return func(s *Session) { s.presenters = append(s.presenters, p...) }
}

// New validates cfg and wires the world, singletons and systems. The first
// round is not started; call StartRound.
func New(cfg *config.Config, log *zap.Logger, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	s := &Session{cfg: cfg, log: log}
	for _, o := range opts {
		o(s)
	}

	seed := cfg.Rules.SeedValue()
	s.frame = &system.Frame{
		World:  ecs.NewWorld(),
		Grid:   grid.New(cfg.Grid.Width, cfg.Grid.Height),
		Rules:  rulesFrom(cfg),
		State:  &component.GameState{},
		Score:  &component.Score{},
		Events: event.NewQueue(),
		Rand:   rand.New(rand.NewSource(seed)),
		Log:    log,
	}

	if s.store != nil {
		hs, err := s.store.LoadHighScore()
		if err != nil {
			log.Warn("high score unavailable", zap.Error(err))
		}
		s.frame.Score.High = hs.Score
	}

	s.input = &system.InputSystem{}
	s.obstacles = &system.ObstacleSystem{}
	s.sched = system.NewScheduler(
		s.input,
		s.obstacles,
		system.MovementSystem{},
		system.CollisionSystem{},
		&system.SpawnSystem{MaxAttempts: system.DefaultMaxSpawnAttempts},
		system.HungerSystem{},
		&system.ScoringSystem{},
	)
	if cfg.Rules.Validate {
		s.validator = &system.ValidationSystem{}
		s.sched.Register(s.validator)
	}
	for _, p := range s.presenters {
		s.sched.Register(p)
	}

	log.Debug("session ready",
		zap.Int("width", cfg.Grid.Width),
		zap.Int("height", cfg.Grid.Height),
		zap.Int64("seed", seed),
		zap.Int("systems", len(s.sched.Systems())),
	)
	return s, nil
}

func rulesFrom(cfg *config.Config) system.Rules {
	r := system.Rules{
		ElectricWalls: cfg.Rules.ElectricWalls,
		Apples:        cfg.Rules.Apples,
		ApplePoints:   cfg.Rules.ApplePoints,
		MinSpeed:      cfg.Snake.MinSpeed,
		MaxSpeed:      cfg.Snake.MaxSpeed,
		ObstacleCount: cfg.Rules.ObstacleTarget(cfg.Grid.Width * cfg.Grid.Height),
		HungerTicks:   cfg.Rules.HungerTicks,
	}
	switch cfg.Rules.Mode {
	case config.ModeFruits:
		r.Fruits = true
	case config.ModePoison:
		r.PoisonChance = cfg.Rules.PoisonChance
	}
	return r
}

// StartRound clears the board and places a fresh snake at the centre heading
// right. Obstacles and apples appear on the first Step.
func (s *Session) StartRound() {
	f := s.frame
	f.World.Clear()
	f.State.Reset()
	f.Score.Current = 0
	f.Events.Clear()
	f.Tick = 0
	s.sched.Reset()

	factory.NewSnake(f.World, factory.SnakeSpec{
		Head:   f.Grid.Center(),
		Length: s.cfg.Snake.InitialLength,
		DX:     1,
		Speed:  s.cfg.Snake.InitialSpeed,
		Look:   factory.Looks[s.cfg.Display.Palette],
		Hunger: s.cfg.Rules.HungerTicks,
	})
	f.Events.Push(event.Event{Kind: event.KindRoundStarted})

	s.run = store.NewRun()
	s.recorded = false
	s.roundHigh = f.Score.High
	s.log.Info("round started",
		zap.String("run", s.run.ID),
		zap.String("mode", s.cfg.Rules.Mode),
		zap.Int("obstacles", f.Rules.ObstacleCount),
	)
}

// Step runs one tick. When the round has just ended it is recorded.
func (s *Session) Step() {
	s.sched.Tick(s.frame)
	if s.frame.State.GameOver && !s.recorded {
		s.recorded = true
		s.finishRound(string(s.frame.State.DeathReason))
	}
}

// Abandon records a round the player leaves before it is over: a raised high
// score is saved and the run is logged with cause "quit". It does nothing
// for a round that was already recorded or never started.
func (s *Session) Abandon() {
	if s.recorded || s.run.ID == "" {
		return
	}
	s.recorded = true
	s.finishRound("quit")
}

// Submit queues a player command for the next Step.
func (s *Session) Submit(c system.Command) { s.input.Submit(c) }

// TickInterval is the time between Steps at the snake's current speed.
func (s *Session) TickInterval() time.Duration {
	speed := s.cfg.Snake.InitialSpeed
	if sn, ok := system.SnakeOf(s.frame.World); ok && sn.Vel.Speed > 0 {
		speed = sn.Vel.Speed
	}
	return time.Duration(float64(time.Second) / speed)
}

// State returns a copy of the game state flags.
func (s *Session) State() component.GameState { return *s.frame.State }

// Score returns a copy of the score.
func (s *Session) Score() component.Score { return *s.frame.Score }

// ClearScene acknowledges a pending scene request.
func (s *Session) ClearScene() { s.frame.State.NextScene = component.SceneNone }

// Anomalies returns how many invariant violations validation has logged.
func (s *Session) Anomalies() int {
	if s.validator == nil {
		return 0
	}
	return s.validator.Anomalies
}

// Snapshot returns a read-only view of the current frame.
func (s *Session) Snapshot() Snapshot { return Capture(s.frame) }

// logStats writes per-system timings at debug level.
func (s *Session) logStats() {
	if !s.log.Core().Enabled(zap.DebugLevel) {
		return
	}
	for _, st := range s.sched.Stats() {
		s.log.Debug("system stats",
			zap.String("system", st.Name),
			zap.Stringer("phase", st.Phase),
			zap.Int64("runs", st.ExecutionCount),
			zap.Int64("skipped", st.SkippedCount),
			zap.Duration("avg", st.AvgDuration),
			zap.Duration("max", st.MaxDuration),
		)
	}
}

func (s *Session) finishRound(cause string) {
	f := s.frame
	length := 0
	if sn, ok := system.SnakeOf(f.World); ok {
		length = sn.Body.Len()
	}
	newHigh := f.Score.High > s.roundHigh

	s.log.Info("round over",
		zap.String("run", s.run.ID),
		zap.String("cause", cause),
		zap.Int("score", f.Score.Current),
		zap.Int("length", length),
		zap.Uint64("ticks", f.Tick),
		zap.Bool("high_score", newHigh),
	)
	s.logStats()
	if s.store == nil {
		return
	}
	if newHigh {
		if err := s.store.SaveHighScore(f.Score.High); err != nil {
			s.log.Warn("save high score", zap.Error(err))
		}
	}

	run := s.run
	run.Ended = time.Now().UTC()
	run.Score = f.Score.Current
	run.Length = length
	run.Cause = cause
	run.Ticks = f.Tick
	run.Grid = fmt.Sprintf("%dx%d", f.Grid.Width, f.Grid.Height)
	run.Mode = s.cfg.Rules.Mode
	run.Difficulty = s.cfg.Rules.ObstacleDifficulty
	run.Obstacles = len(s.obstacles.Placed())
	run.Electric = f.Rules.ElectricWalls
	run.Seed = s.cfg.Rules.Seed
	run.HighScore = newHigh
	if err := s.store.AppendRun(run); err != nil {
		s.log.Warn("append run log", zap.Error(err))
	}
}
