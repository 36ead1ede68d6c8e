package component

// Consumable is a potion found in a room and drunk on the spot.
type Consumable uint8

const (
	HealthPotion Consumable = iota
	ShieldPotion
	StrengthPotion
)

// Consumables lists every consumable kind.
var Consumables = []Consumable{HealthPotion, ShieldPotion, StrengthPotion}

var consumableInfo = [...]struct {
	name, label string
	effect      EffectKind
}{
	HealthPotion:   {"health potion", "Health restored", EffectHeal},
	ShieldPotion:   {"shield potion", "You block some damage", EffectShield},
	StrengthPotion: {"strength potion", "Strength increased temporarily", EffectDamageBoost},
}

// Label is the notification shown once the potion is drunk.
func (c Consumable) Label() string { return consumableInfo[c].label }

// Effect returns the effect the potion applies.
func (c Consumable) Effect() EffectKind { return consumableInfo[c].effect }

func (c Consumable) String() string { return consumableInfo[c].name }

// PowerUp is a permanent upgrade found in a room.
type PowerUp uint8

const (
	PowerDamageUp PowerUp = iota
	PowerHealthUp
	PowerForesight
)

// PowerUps lists every power-up kind.
var PowerUps = []PowerUp{PowerDamageUp, PowerHealthUp, PowerForesight}

var powerUpInfo = [...]struct {
	name, label string
	effect      EffectKind
}{
	PowerDamageUp:  {"damage up", "Damage increased", EffectDamageUp},
	PowerHealthUp:  {"health up", "Health increased", EffectHealthUp},
	PowerForesight: {"foresight", "Attack first", EffectForesight},
}

// Label is the notification shown once the power-up is taken.
func (p PowerUp) Label() string { return powerUpInfo[p].label }

// Effect returns the effect the power-up applies.
func (p PowerUp) Effect() EffectKind { return powerUpInfo[p].effect }

func (p PowerUp) String() string { return powerUpInfo[p].name }
