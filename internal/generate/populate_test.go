package generate

import (
	"math/rand"
	"testing"

	"room-crawler/internal/component"
)

func TestRollEventThresholdOne(t *testing.T) {
	// Rolls never reach 1.0, so no room gets an event.
	cfg := defaultTestConfig(5)
	cfg.EventThreshold = 1.0
	for i := 0; i < 200; i++ {
		if ev := rollEvent(cfg); ev.Pending() {
			t.Fatalf("iteration %d: unexpected event %v", i, ev)
		}
	}
}

func TestRollEventThresholdZero(t *testing.T) {
	// The lowest roll is 0.1, so every room gets an event.
	cfg := defaultTestConfig(5)
	cfg.EventThreshold = 0
	for i := 0; i < 200; i++ {
		if ev := rollEvent(cfg); !ev.Pending() {
			t.Fatalf("iteration %d: expected an event", i)
		}
	}
}

func TestRollEventWeights(t *testing.T) {
	cases := []struct {
		name    string
		weights EventWeights
		want    component.EventKind
	}{
		{"battle only", EventWeights{Battle: 1}, component.EventBattle},
		{"consumable only", EventWeights{Consumable: 4}, component.EventConsumable},
		{"power-up only", EventWeights{PowerUp: 2}, component.EventPowerUp},
		{"negative ignored", EventWeights{Battle: -3, PowerUp: 1}, component.EventPowerUp},
		{"all zero", EventWeights{}, component.EventNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultTestConfig(9)
			cfg.EventThreshold = 0
			cfg.Weights = tc.weights
			for i := 0; i < 50; i++ {
				if got := rollEvent(cfg).Kind; got != tc.want {
					t.Fatalf("iteration %d: kind = %v; want %v", i, got, tc.want)
				}
			}
		})
	}
}

func TestPickEnemyFromTable(t *testing.T) {
	cfg := defaultTestConfig(13)
	counts := map[string]int{}
	for i := 0; i < 400; i++ {
		counts[pickEnemy(cfg).Name]++
	}
	if counts["slime"] == 0 || counts["bat"] == 0 {
		t.Fatalf("both table entries should appear: %v", counts)
	}
	// slime carries 3x the weight of bat.
	if counts["slime"] <= counts["bat"] {
		t.Errorf("weighted pick skewed the wrong way: %v", counts)
	}
}

func TestPickEnemyEmptyTable(t *testing.T) {
	cfg := &Config{Rand: rand.New(rand.NewSource(1))}
	if got := pickEnemy(cfg); got != DefaultEnemy {
		t.Errorf("pickEnemy = %+v; want default %+v", got, DefaultEnemy)
	}
}

func TestCountEvents(t *testing.T) {
	rooms := []*Room{
		{},
		{Event: component.Event{Kind: component.EventBattle}},
		{Event: component.Event{Kind: component.EventBattle}},
		{Event: component.Event{Kind: component.EventPowerUp}},
	}
	got := CountEvents(rooms)
	if got[component.EventBattle] != 2 || got[component.EventPowerUp] != 1 || got[component.EventNone] != 0 {
		t.Errorf("CountEvents = %v", got)
	}
}
