package config

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"room-crawler/internal/component"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	w, h := cfg.GridSize()
	assert.Equal(t, 17, w)
	assert.Equal(t, 10, h)
	assert.Equal(t, 9, cfg.Rooms)
	assert.InDelta(t, 0.75, cfg.EventThreshold, 1e-9)
	assert.Equal(t, WeightsConfig{Battle: 2, Consumable: 1, PowerUp: 1}, cfg.Weights)
	assert.Equal(t, []component.EnemyStats{{Name: "slime", Health: 2, Attack: 1, Weight: 1}}, cfg.Enemies)
	assert.Equal(t, PlayerConfig{Name: "toto", MaxHealth: 10, Attack: 1}, cfg.Player)
	assert.Equal(t, 1000, cfg.MaxRounds)
	assert.Empty(t, cfg.Seed)
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
rooms: 20
grid:
  width: 30
  height: 12
enemies:
  - {name: bat, health: 3, attack: 2, weight: 5}
`))
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Rooms)
	w, h := cfg.GridSize()
	assert.Equal(t, 30, w)
	assert.Equal(t, 12, h)
	require.Len(t, cfg.Enemies, 1)
	assert.Equal(t, "bat", cfg.Enemies[0].Name)
	assert.Equal(t, "toto", cfg.Player.Name, "untouched sections keep their defaults")
}

func TestParseRejects(t *testing.T) {
	cases := map[string]string{
		"zero rooms":         "rooms: 0",
		"threshold too high": "event_threshold: 1.5",
		"negative weight":    "event_weights: {battle: -1}",
		"nameless enemy":     "enemies: [{health: 2, attack: 1}]",
		"dead enemy":         "enemies: [{name: ghost, health: 0, attack: 1}]",
		"dead player":        "player: {max_health: 0}",
		"negative rounds":    "max_rounds: -3",
		"bad seed":           "seed: '!!'",
		"empty grid":         "grid: {width: 0, height: 0, room_size: 0}",
		"single row grid":    "grid: {width: 5, height: 1}",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid), "got %v", err)
		})
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse([]byte("rooms: [1, 2"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalid))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crawler.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rooms: 4\nseed: zz\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Rooms)
	assert.Equal(t, "zz", cfg.Seed)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGeneratorAndPlayerSpec(t *testing.T) {
	cfg := Default()
	rng := rand.New(rand.NewSource(1))
	gen := cfg.Generator(rng)

	assert.Equal(t, 9, gen.Rooms)
	assert.Equal(t, 2, gen.Weights.Battle)
	assert.Same(t, rng, gen.Rand)
	assert.Equal(t, cfg.Enemies, gen.EnemyTable)

	spec := cfg.PlayerSpec()
	assert.Equal(t, "toto", spec.Name)
	assert.Equal(t, 10, spec.MaxHealth)
	assert.Equal(t, 1, spec.Attack)

	g := cfg.NewGrid()
	assert.Equal(t, 17, g.Width)
	assert.Equal(t, 0, g.Count())
}

func TestSeedRoundTrip(t *testing.T) {
	for _, seed := range []int32{0, 1, 35, 36, -1, 123456789, -2147483648} {
		s := FormatSeed(seed)
		got, err := ParseSeed(s)
		require.NoError(t, err, s)
		assert.Equal(t, seed, got, s)
	}
	assert.Equal(t, "z", FormatSeed(35))
	assert.Equal(t, "1z141z3", FormatSeed(-1))
}

func TestParseSeedCaseInsensitive(t *testing.T) {
	got, err := ParseSeed("ZZ")
	require.NoError(t, err)
	assert.Equal(t, int32(35*36+35), got)
}

func TestParseSeedOverflow(t *testing.T) {
	_, err := ParseSeed("zzzzzzz")
	assert.Error(t, err)
}
