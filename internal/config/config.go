package config

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"room-crawler/assets"
	"room-crawler/internal/component"
	"room-crawler/internal/factory"
	"room-crawler/internal/gamemap"
	"room-crawler/internal/generate"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// GridConfig sizes the dungeon grid. Width and Height win when both are set;
// otherwise the size is derived from a viewport and the room size.
type GridConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	ViewWidth  int `yaml:"view_width"`
	ViewHeight int `yaml:"view_height"`
	RoomSize   int `yaml:"room_size"`
}

// WeightsConfig gives the relative odds of each event kind.
type WeightsConfig struct {
	Battle     int `yaml:"battle"`
	Consumable int `yaml:"consumable"`
	PowerUp    int `yaml:"power_up"`
}

// PlayerConfig holds the starting stats of a run.
type PlayerConfig struct {
	Name      string `yaml:"name"`
	MaxHealth int    `yaml:"max_health"`
	Attack    int    `yaml:"attack"`
}

// Config is the full game configuration.
type Config struct {
	Grid           GridConfig             `yaml:"grid"`
	Rooms          int                    `yaml:"rooms"`
	EventThreshold float64                `yaml:"event_threshold"`
	Weights        WeightsConfig          `yaml:"event_weights"`
	Enemies        []component.EnemyStats `yaml:"enemies"`
	Player         PlayerConfig           `yaml:"player"`
	MaxRounds      int                    `yaml:"max_rounds"`
	Seed           string                 `yaml:"seed"` // base36; empty picks a random seed per run
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(assets.DefaultConfig, cfg); err != nil {
		panic(fmt.Sprintf("embedded default config: %v", err))
	}
	return cfg
}

// Load reads path and lays it over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse lays a YAML document over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges. Every error wraps ErrInvalid.
func (c *Config) Validate() error {
	w, h := c.GridSize()
	if w < 1 || h < 1 {
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalid, w, h)
	}
	if g := gamemap.New(w, h); !g.Free(g.Center()) {
		return fmt.Errorf("%w: %dx%d grid has no start cell, height must be at least 2", ErrInvalid, w, h)
	}
	if c.Rooms < 1 {
		return fmt.Errorf("%w: rooms must be at least 1, got %d", ErrInvalid, c.Rooms)
	}
	if c.EventThreshold < 0 || c.EventThreshold > 1 {
		return fmt.Errorf("%w: event_threshold must be within [0, 1], got %g", ErrInvalid, c.EventThreshold)
	}
	if c.Weights.Battle < 0 || c.Weights.Consumable < 0 || c.Weights.PowerUp < 0 {
		return fmt.Errorf("%w: event weights must not be negative", ErrInvalid)
	}
	for i, e := range c.Enemies {
		if e.Name == "" {
			return fmt.Errorf("%w: enemy %d has no name", ErrInvalid, i)
		}
		if e.Health < 1 || e.Attack < 0 || e.Weight < 0 {
			return fmt.Errorf("%w: enemy %q needs health >= 1, attack >= 0 and weight >= 0", ErrInvalid, e.Name)
		}
	}
	if c.Player.MaxHealth < 1 {
		return fmt.Errorf("%w: player max_health must be at least 1", ErrInvalid)
	}
	if c.Player.Attack < 0 {
		return fmt.Errorf("%w: player attack must not be negative", ErrInvalid)
	}
	if c.MaxRounds < 0 {
		return fmt.Errorf("%w: max_rounds must not be negative", ErrInvalid)
	}
	if c.Seed != "" {
		if _, err := ParseSeed(c.Seed); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}
	return nil
}

// GridSize resolves the grid dimensions.
func (c *Config) GridSize() (w, h int) {
	if c.Grid.Width > 0 && c.Grid.Height > 0 {
		return c.Grid.Width, c.Grid.Height
	}
	g := gamemap.FromViewport(c.Grid.ViewWidth, c.Grid.ViewHeight, c.Grid.RoomSize)
	return g.Width, g.Height
}

// NewGrid returns an empty grid of the configured size.
func (c *Config) NewGrid() *gamemap.Grid {
	return gamemap.New(c.GridSize())
}

// Generator builds the generation settings around rng.
func (c *Config) Generator(rng *rand.Rand) *generate.Config {
	return &generate.Config{
		Rooms:          c.Rooms,
		EventThreshold: c.EventThreshold,
		Weights: generate.EventWeights{
			Battle:     c.Weights.Battle,
			Consumable: c.Weights.Consumable,
			PowerUp:    c.Weights.PowerUp,
		},
		EnemyTable: c.Enemies,
		Rand:       rng,
	}
}

// PlayerSpec converts the player section for the entity factory.
func (c *Config) PlayerSpec() factory.PlayerSpec {
	return factory.PlayerSpec{
		Name:      c.Player.Name,
		MaxHealth: c.Player.MaxHealth,
		Attack:    c.Player.Attack,
	}
}
