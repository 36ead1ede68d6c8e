package factory

import (
	"room-crawler/internal/component"
	"room-crawler/internal/gamemap"
)

// PlayerSpec holds the starting stats of a run.
type PlayerSpec struct {
	Name      string
	MaxHealth int
	Attack    int
}

// NewPlayer creates a player at full health standing in the room at start.
func NewPlayer(spec PlayerSpec, start gamemap.Point) *component.Player {
	return &component.Player{
		Name:   spec.Name,
		Health: component.Health{Current: spec.MaxHealth, Max: spec.MaxHealth},
		Combat: component.Combat{Attack: spec.Attack},
		Pos:    start,
	}
}

// ResetPlayer restores p to spec in place, clearing effects, shield and path.
func ResetPlayer(p *component.Player, spec PlayerSpec, start gamemap.Point) {
	*p = *NewPlayer(spec, start)
}

// NewEnemy creates a live enemy from its stats.
func NewEnemy(stats component.EnemyStats) *component.Enemy {
	return &component.Enemy{
		Name:   stats.Name,
		Health: component.Health{Current: stats.Health, Max: stats.Health},
		Attack: stats.Attack,
	}
}
