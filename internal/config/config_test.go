package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "naja.toml")
	data := `
[grid]
width = 10
height = 10

[rules]
electric_walls = false
obstacle_difficulty = "Hard"
seed = "abc"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Grid.Width)
	assert.False(t, cfg.Rules.ElectricWalls)
	assert.Equal(t, "Hard", cfg.Rules.ObstacleDifficulty)
	assert.Equal(t, 3, cfg.Snake.InitialLength, "untouched keys keep defaults")
	assert.Equal(t, 10, cfg.Rules.ObstacleTarget(100))
	require.NoError(t, cfg.Validate())
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsBadToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[grid\nwidth ="), 0o644))
	_, err := LoadOrDefault(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"grid too small", func(c *Config) { c.Grid.Width = 4 }},
		{"grid too large", func(c *Config) { c.Grid.Height = 201 }},
		{"snake too long", func(c *Config) { c.Snake.InitialLength = 16 }},
		{"snake empty", func(c *Config) { c.Snake.InitialLength = 0 }},
		{"zero speed", func(c *Config) { c.Snake.InitialSpeed = 0 }},
		{"initial above max", func(c *Config) { c.Snake.InitialSpeed = 25 }},
		{"max speed too high", func(c *Config) { c.Snake.MaxSpeed = 61 }},
		{"zero min speed", func(c *Config) { c.Snake.MinSpeed = 0 }},
		{"min above initial", func(c *Config) { c.Snake.MinSpeed = 5 }},
		{"unknown mode", func(c *Config) { c.Rules.Mode = "arcade" }},
		{"no apples", func(c *Config) { c.Rules.Apples = 0 }},
		{"too many apples", func(c *Config) { c.Rules.Apples = 31 }},
		{"unknown difficulty", func(c *Config) { c.Rules.ObstacleDifficulty = "Brutal" }},
		{"poison chance", func(c *Config) { c.Rules.PoisonChance = 1.5 }},
		{"negative hunger", func(c *Config) { c.Rules.HungerTicks = -1 }},
		{"unknown palette", func(c *Config) { c.Display.Palette = "rainbow" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestAppleLimit(t *testing.T) {
	cfg := Default()
	cfg.Grid.Width, cfg.Grid.Height = 5, 5
	assert.Equal(t, 3, cfg.AppleLimit())
	cfg.Grid.Width, cfg.Grid.Height = 100, 100
	assert.Equal(t, MaxApples, cfg.AppleLimit())
}

func TestObstacleTarget(t *testing.T) {
	r := RulesConfig{ObstacleDifficulty: "Easy"}
	assert.Equal(t, 4, r.ObstacleTarget(100))
	r.ObstacleCount = 7
	assert.Equal(t, 7, r.ObstacleTarget(100), "an explicit count overrides the difficulty")
	assert.Zero(t, RulesConfig{ObstacleDifficulty: "None"}.ObstacleTarget(400))
}

func TestModes(t *testing.T) {
	for _, m := range Modes() {
		cfg := Default()
		cfg.Rules.Mode = m
		assert.NoError(t, cfg.Validate(), m)
	}
	assert.Equal(t, ModeClassic, Default().Rules.Mode)
}

func TestSeedValue(t *testing.T) {
	r := RulesConfig{Seed: "naja"}
	assert.Equal(t, r.SeedValue(), r.SeedValue())
	assert.NotEqual(t, r.SeedValue(), RulesConfig{Seed: "other"}.SeedValue())
}
