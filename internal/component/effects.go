package component

// EffectKind describes what an effect does.
type EffectKind uint8

const (
	EffectDamageBoost EffectKind = iota // attack x2 for a number of battles
	EffectDamageUp                      // +20% attack, rounded up
	EffectForesight                     // strike first in battle
	EffectHeal                          // restore 20% of max health
	EffectHealthUp                      // +1 max health
	EffectShield                        // +3 shield pool for a number of battles
)

// EffectClass describes how long an effect lives.
type EffectClass uint8

const (
	ClassBattle    EffectClass = iota // counts down once per battle
	ClassPermanent                    // stays for the whole run
	ClassOneShot                      // applied once, never stored
)

func (c EffectClass) String() string {
	switch c {
	case ClassBattle:
		return "battle"
	case ClassPermanent:
		return "permanent"
	case ClassOneShot:
		return "one-shot"
	}
	return "unknown"
}

// EffectDef is the static description of an effect kind.
type EffectDef struct {
	Name       string
	Class      EffectClass
	Duration   int    // battles; 0 for effects that do not count down
	EndMessage string // shown when a battle effect runs out
}

// EffectDefs is indexed by EffectKind.
var EffectDefs = [...]EffectDef{
	EffectDamageBoost: {Name: "damage boost", Class: ClassBattle, Duration: 2, EndMessage: "Strength back to normal"},
	EffectDamageUp:    {Name: "damage up", Class: ClassPermanent},
	EffectForesight:   {Name: "foresight", Class: ClassPermanent},
	EffectHeal:        {Name: "heal", Class: ClassOneShot},
	EffectHealthUp:    {Name: "health up", Class: ClassPermanent},
	EffectShield:      {Name: "shield", Class: ClassBattle, Duration: 3, EndMessage: "Shield broke"},
}

// Def returns the static definition for k.
func (k EffectKind) Def() EffectDef {
	if int(k) >= len(EffectDefs) {
		return EffectDef{Name: "unknown", Class: ClassOneShot}
	}
	return EffectDefs[k]
}

func (k EffectKind) String() string { return k.Def().Name }

// ActiveEffect is a stored effect. BattlesRemaining only matters for ClassBattle.
type ActiveEffect struct {
	Kind             EffectKind
	BattlesRemaining int
}

// Effects is the list of effects an actor carries.
type Effects struct {
	Active []ActiveEffect
}

// Has reports whether an effect of the given kind is active.
func (e Effects) Has(kind EffectKind) bool {
	for _, a := range e.Active {
		if a.Kind == kind {
			return true
		}
	}
	return false
}

// Names lists active effects for display, in application order.
func (e Effects) Names() []string {
	names := make([]string, 0, len(e.Active))
	for _, a := range e.Active {
		names = append(names, a.Kind.String())
	}
	return names
}
