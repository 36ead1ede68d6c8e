package generate

import "room-crawler/internal/component"

// DefaultEnemy is fought when a battle is rolled but the enemy table is empty.
var DefaultEnemy = component.EnemyStats{Name: "slime", Health: 2, Attack: 1, Weight: 1}

// rollEvent decides what waits in a freshly generated room.
func rollEvent(cfg *Config) component.Event {
	roll := 0.1 + cfg.Rand.Float64()*0.9
	if roll <= cfg.EventThreshold {
		return component.Event{}
	}

	w := cfg.Weights
	total := max(w.Battle, 0) + max(w.Consumable, 0) + max(w.PowerUp, 0)
	if total == 0 {
		return component.Event{}
	}
	n := cfg.Rand.Intn(total)
	switch {
	case n < max(w.Battle, 0):
		return component.Event{Kind: component.EventBattle, Enemy: pickEnemy(cfg)}
	case n < max(w.Battle, 0)+max(w.Consumable, 0):
		c := component.Consumables[cfg.Rand.Intn(len(component.Consumables))]
		return component.Event{Kind: component.EventConsumable, Consumable: c}
	default:
		p := component.PowerUps[cfg.Rand.Intn(len(component.PowerUps))]
		return component.Event{Kind: component.EventPowerUp, PowerUp: p}
	}
}

// pickEnemy draws from the enemy table by weight. Entries with no weight count as 1.
func pickEnemy(cfg *Config) component.EnemyStats {
	if len(cfg.EnemyTable) == 0 {
		return DefaultEnemy
	}
	total := 0
	for _, e := range cfg.EnemyTable {
		total += enemyWeight(e)
	}
	n := cfg.Rand.Intn(total)
	for _, e := range cfg.EnemyTable {
		n -= enemyWeight(e)
		if n < 0 {
			return e
		}
	}
	return cfg.EnemyTable[len(cfg.EnemyTable)-1]
}

func enemyWeight(e component.EnemyStats) int {
	if e.Weight <= 0 {
		return 1
	}
	return e.Weight
}

// CountEvents tallies the pending events per kind, skipping empty rooms.
func CountEvents(rooms []*Room) map[component.EventKind]int {
	out := make(map[component.EventKind]int)
	for _, r := range rooms {
		if r.Event.Pending() {
			out[r.Event.Kind]++
		}
	}
	return out
}
