package system

import (
	"math"

	"room-crawler/internal/component"
)

// ApplyEffect performs the immediate part of an effect on the player and
// stores it when it outlasts the moment (battle and permanent classes).
func ApplyEffect(p *component.Player, kind component.EffectKind) {
	switch kind {
	case component.EffectDamageUp:
		p.Combat.Attack += ceilFraction(p.Combat.Attack, 0.2)
	case component.EffectHeal:
		p.Health.Heal(ceilFraction(p.Health.Max, 0.2))
	case component.EffectHealthUp:
		p.Health.Max++
		p.Health.Current++
	case component.EffectShield:
		p.Combat.Shield += 3
	}

	def := kind.Def()
	if def.Class == component.ClassOneShot {
		return
	}
	storeEffect(p, component.ActiveEffect{Kind: kind, BattlesRemaining: def.Duration})
}

// storeEffect adds eff, or refreshes an existing effect of the same kind
// when the new duration is longer.
func storeEffect(p *component.Player, eff component.ActiveEffect) {
	for i, e := range p.Effects.Active {
		if e.Kind == eff.Kind {
			if eff.BattlesRemaining > e.BattlesRemaining {
				p.Effects.Active[i] = eff
			}
			return
		}
	}
	p.Effects.Active = append(p.Effects.Active, eff)
}

// TickBattleEffects counts down every battle-class effect by one battle,
// removes expired ones and returns their end messages.
func TickBattleEffects(p *component.Player) []string {
	var ended []string
	active := p.Effects.Active[:0]
	for _, e := range p.Effects.Active {
		if e.Kind.Def().Class != component.ClassBattle {
			active = append(active, e)
			continue
		}
		e.BattlesRemaining--
		if e.BattlesRemaining > 0 {
			active = append(active, e)
			continue
		}
		if e.Kind == component.EffectShield {
			p.Combat.Shield = 0
		}
		if msg := e.Kind.Def().EndMessage; msg != "" {
			ended = append(ended, msg)
		}
	}
	p.Effects.Active = active
	return ended
}

// EffectiveAttack is the player's attack after active modifiers.
func EffectiveAttack(p *component.Player) int {
	if p.Effects.Has(component.EffectDamageBoost) {
		return p.Combat.Attack * 2
	}
	return p.Combat.Attack
}

func ceilFraction(v int, f float64) int {
	return int(math.Ceil(float64(v) * f))
}
