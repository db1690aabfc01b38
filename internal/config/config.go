package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/cespare/xxhash/v2"
)

// ErrInvalid is wrapped by every error Validate returns.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Grid    GridConfig    `toml:"grid"`
	Snake   SnakeConfig   `toml:"snake"`
	Rules   RulesConfig   `toml:"rules"`
	Audio   AudioConfig   `toml:"audio"`
	Display DisplayConfig `toml:"display"`
	Logging LoggingConfig `toml:"logging"`
	Storage StorageConfig `toml:"storage"`
}

type GridConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type SnakeConfig struct {
	InitialLength int     `toml:"initial_length"`
	InitialSpeed  float64 `toml:"initial_speed"` // cells per second
	MinSpeed      float64 `toml:"min_speed"`
	MaxSpeed      float64 `toml:"max_speed"`
}

type RulesConfig struct {
	Mode               string  `toml:"mode"`
	ElectricWalls      bool    `toml:"electric_walls"`
	Apples             int     `toml:"apples"`
	ApplePoints        int     `toml:"apple_points"`
	ObstacleDifficulty string  `toml:"obstacle_difficulty"`
	ObstacleCount      int     `toml:"obstacle_count"` // overrides the difficulty when > 0
	PoisonChance       float64 `toml:"poison_chance"` // used in poison mode only
	HungerTicks        int     `toml:"hunger_ticks"` // 0 disables starvation
	Seed               string  `toml:"seed"`         // empty means time based
	Validate           bool    `toml:"validate"`
}

type AudioConfig struct {
	Enabled bool `toml:"enabled"`
}

type DisplayConfig struct {
	Palette string `toml:"palette"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // empty means <data dir>/naja.log
}

type StorageConfig struct {
	Dir string `toml:"dir"` // empty means the XDG data dir
}

// Obstacle difficulties and the share of grid cells each one fills.
var difficulties = map[string]float64{
	"None":       0,
	"Easy":       0.04,
	"Medium":     0.06,
	"Hard":       0.10,
	"Impossible": 0.15,
}

// Difficulties returns the difficulty names from easiest to hardest.
func Difficulties() []string {
	return []string{"None", "Easy", "Medium", "Hard", "Impossible"}
}

// Game modes.
const (
	ModeClassic = "classic" // apples only
	ModeFruits  = "fruits"  // apples, grapes and oranges
	ModePoison  = "poison"  // apples and the occasional poisoned apple
)

// Modes returns the game mode names in menu order.
func Modes() []string {
	return []string{ModeClassic, ModeFruits, ModePoison}
}

// Palettes lists the snake colour schemes the renderer knows.
var Palettes = []string{"green", "blue", "purple", "gold"}

// Limits checked by Validate.
const (
	MinGridSide    = 5
	MaxGridSide    = 200
	MaxSpeedLimit  = 60
	MaxApples      = 30
	appleCellShare = 15 // percent of cells
)

// Load reads a TOML file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields the defaults.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func Default() *Config {
	return &Config{
		Grid: GridConfig{
			Width:  30,
			Height: 20,
		},
		Snake: SnakeConfig{
			InitialLength: 3,
			InitialSpeed:  4,
			MinSpeed:      2,
			MaxSpeed:      20,
		},
		Rules: RulesConfig{
			Mode:               ModeClassic,
			ElectricWalls:      true,
			Apples:             1,
			ApplePoints:        10,
			ObstacleDifficulty: "None",
			PoisonChance:       0.01,
			Validate:           true,
		},
		Audio: AudioConfig{
			Enabled: true,
		},
		Display: DisplayConfig{
			Palette: "green",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate reports the first configuration error found.
func (c *Config) Validate() error {
	g := c.Grid
	if g.Width < MinGridSide || g.Width > MaxGridSide || g.Height < MinGridSide || g.Height > MaxGridSide {
		return fmt.Errorf("%w: grid %dx%d, each side must be in [%d, %d]", ErrInvalid, g.Width, g.Height, MinGridSide, MaxGridSide)
	}
	if n := c.Snake.InitialLength; n < 1 || n > g.Width/2 {
		return fmt.Errorf("%w: snake.initial_length %d must be in [1, %d]", ErrInvalid, n, g.Width/2)
	}
	s := c.Snake
	if s.MinSpeed <= 0 || s.MinSpeed > s.InitialSpeed || s.InitialSpeed > s.MaxSpeed || s.MaxSpeed > MaxSpeedLimit {
		return fmt.Errorf("%w: speeds min=%g initial=%g max=%g, need 0 < min <= initial <= max <= %d",
			ErrInvalid, s.MinSpeed, s.InitialSpeed, s.MaxSpeed, MaxSpeedLimit)
	}
	r := c.Rules
	if !slices.Contains(Modes(), r.Mode) {
		return fmt.Errorf("%w: rules.mode %q, want one of %v", ErrInvalid, r.Mode, Modes())
	}
	if limit := c.AppleLimit(); r.Apples < 1 || r.Apples > limit {
		return fmt.Errorf("%w: rules.apples %d must be in [1, %d]", ErrInvalid, r.Apples, limit)
	}
	if r.ApplePoints < 0 {
		return fmt.Errorf("%w: rules.apple_points %d is negative", ErrInvalid, r.ApplePoints)
	}
	if _, ok := difficulties[r.ObstacleDifficulty]; !ok {
		return fmt.Errorf("%w: rules.obstacle_difficulty %q, want one of %v", ErrInvalid, r.ObstacleDifficulty, Difficulties())
	}
	if r.ObstacleCount < 0 || r.ObstacleCount >= g.Width*g.Height {
		return fmt.Errorf("%w: rules.obstacle_count %d out of range", ErrInvalid, r.ObstacleCount)
	}
	if r.PoisonChance < 0 || r.PoisonChance > 1 {
		return fmt.Errorf("%w: rules.poison_chance %g must be in [0, 1]", ErrInvalid, r.PoisonChance)
	}
	if r.HungerTicks < 0 {
		return fmt.Errorf("%w: rules.hunger_ticks %d is negative", ErrInvalid, r.HungerTicks)
	}
	if !slices.Contains(Palettes, c.Display.Palette) {
		return fmt.Errorf("%w: display.palette %q, want one of %v", ErrInvalid, c.Display.Palette, Palettes)
	}
	return nil
}

// AppleLimit is the largest apple count the grid allows: 15% of the cells,
// capped at MaxApples, never below 1.
func (c *Config) AppleLimit() int {
	return max(1, min(MaxApples, c.Grid.Width*c.Grid.Height*appleCellShare/100))
}

// ObstacleTarget returns how many obstacles a round should place on a grid
// of the given area.
func (r RulesConfig) ObstacleTarget(area int) int {
	if r.ObstacleCount > 0 {
		return r.ObstacleCount
	}
	return int(float64(area) * difficulties[r.ObstacleDifficulty])
}

// SeedValue returns the RNG seed: a hash of Seed, or the clock when empty.
func (r RulesConfig) SeedValue() int64 {
	if r.Seed == "" {
		return time.Now().UnixNano()
	}
	return int64(xxhash.Sum64String(r.Seed))
}
