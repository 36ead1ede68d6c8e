package component

// EventKind classifies what waits in a room.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventBattle
	EventConsumable
	EventPowerUp
)

func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "none"
	case EventBattle:
		return "battle"
	case EventConsumable:
		return "consumable"
	case EventPowerUp:
		return "power-up"
	}
	return "unknown"
}

// EnemyStats describes an enemy before the fight starts.
type EnemyStats struct {
	Name   string `yaml:"name"`
	Health int    `yaml:"health"`
	Attack int    `yaml:"attack"`
	Weight int    `yaml:"weight"` // relative spawn chance
}

// Event is the encounter attached to a room. Only the field matching Kind is used.
type Event struct {
	Kind       EventKind
	Enemy      EnemyStats
	Consumable Consumable
	PowerUp    PowerUp
}

// Pending reports whether the room still has something to trigger.
func (e Event) Pending() bool { return e.Kind != EventNone }

func (e Event) String() string {
	switch e.Kind {
	case EventBattle:
		return "battle: " + e.Enemy.Name
	case EventConsumable:
		return "consumable: " + e.Consumable.String()
	case EventPowerUp:
		return "power-up: " + e.PowerUp.String()
	}
	return e.Kind.String()
}
