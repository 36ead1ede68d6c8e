package system

import "room-crawler/internal/component"

// DefaultMaxRounds caps a battle where neither side can hurt the other.
const DefaultMaxRounds = 1000

// Outcome is how a battle ended.
type Outcome uint8

const (
	OutcomeWon Outcome = iota
	OutcomeLost
	OutcomeStalemate
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	case OutcomeStalemate:
		return "stalemate"
	}
	return "unknown"
}

// Round records one exchange of blows.
type Round struct {
	N            int
	PlayerStrike int // damage dealt to the enemy
	EnemyStrike  int // raw enemy attack, 0 when the enemy did not strike
	Absorbed     int // part of EnemyStrike soaked by the shield
	PlayerHealth int
	EnemyHealth  int
	Shield       int
}

// BattleResult holds the outcome of one battle.
type BattleResult struct {
	Outcome     Outcome
	Foresight   bool
	Rounds      []Round
	DamageDealt int
	DamageTaken int
	Expired     []string // end messages of battle effects that ran out
}

// Battle fights p against e until one side drops to 0 health.
// With foresight the player strikes first and a killed enemy does not strike
// back; otherwise both strike in the same round. Battle effects tick down once
// when the fight is over. maxRounds <= 0 uses DefaultMaxRounds.
func Battle(p *component.Player, e *component.Enemy, maxRounds int) BattleResult {
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}
	res := BattleResult{Foresight: p.Effects.Has(component.EffectForesight)}

	for p.Health.Alive() && e.Health.Alive() {
		if len(res.Rounds) == maxRounds {
			break
		}
		r := Round{N: len(res.Rounds) + 1}
		atk := EffectiveAttack(p)

		if res.Foresight {
			r.PlayerStrike = strike(&e.Health, atk)
			if e.Health.Alive() {
				enemyStrike(p, e.Attack, &r)
			}
		} else {
			enemyStrike(p, e.Attack, &r)
			r.PlayerStrike = strike(&e.Health, atk)
		}

		res.DamageDealt += r.PlayerStrike
		res.DamageTaken += r.EnemyStrike - r.Absorbed
		r.PlayerHealth = p.Health.Current
		r.EnemyHealth = e.Health.Current
		r.Shield = p.Combat.Shield
		res.Rounds = append(res.Rounds, r)
	}

	switch {
	case !p.Health.Alive():
		res.Outcome = OutcomeLost
	case !e.Health.Alive():
		res.Outcome = OutcomeWon
	default:
		res.Outcome = OutcomeStalemate
	}
	p.Health.Current = max(p.Health.Current, 0)
	e.Health.Current = max(e.Health.Current, 0)

	res.Expired = TickBattleEffects(p)
	return res
}

// strike removes dmg (floored at 0) from h and returns what was dealt.
func strike(h *component.Health, dmg int) int {
	if dmg <= 0 {
		return 0
	}
	h.Current -= dmg
	return dmg
}

func enemyStrike(p *component.Player, atk int, r *Round) {
	if atk < 0 {
		atk = 0
	}
	through := p.Combat.Absorb(atk)
	r.EnemyStrike = atk
	r.Absorbed = atk - through
	p.Health.Current -= through
}
