package system

import (
	"room-crawler/internal/component"
	"room-crawler/internal/factory"
	"room-crawler/internal/generate"
)

// Notification texts shown after a room event resolves.
const (
	MsgBattleWon       = "Enemy defeated! Hurray!"
	MsgBattleLost      = "You were defeated! Too bad!"
	MsgBattleStalled   = "Neither side can land a blow. You back off."
	MsgPotionNotNeeded = "Health potion not needed"
)

// EncounterResult describes what happened when a room event was triggered.
type EncounterResult struct {
	Kind     component.EventKind
	Consumed bool     // the room event was used up and cleared
	Messages []string // notifications in display order
	Battle   *BattleResult
}

// TriggerEvent resolves the pending event of room for p.
// Battles are only fought while the player is alive.
func TriggerEvent(p *component.Player, room *generate.Room, maxRounds int) EncounterResult {
	ev := room.Event
	res := EncounterResult{Kind: ev.Kind}

	switch ev.Kind {
	case component.EventBattle:
		if !p.Health.Alive() {
			return res
		}
		br := Battle(p, factory.NewEnemy(ev.Enemy), maxRounds)
		res.Battle = &br
		res.Messages = append(res.Messages, br.Expired...)
		switch br.Outcome {
		case OutcomeWon:
			res.Consumed = true
			res.Messages = append(res.Messages, MsgBattleWon)
		case OutcomeLost:
			res.Messages = append(res.Messages, MsgBattleLost)
		default:
			res.Messages = append(res.Messages, MsgBattleStalled)
		}

	case component.EventConsumable:
		msg, ok := UseConsumable(p, ev.Consumable)
		res.Consumed = ok
		res.Messages = append(res.Messages, msg)

	case component.EventPowerUp:
		res.Consumed = true
		res.Messages = append(res.Messages, TakePowerUp(p, ev.PowerUp))
	}

	if res.Consumed {
		room.Event = component.Event{}
	}
	return res
}

// UseConsumable drinks c. A health potion at full health is refused and
// reported with ok=false so the potion stays where it is.
func UseConsumable(p *component.Player, c component.Consumable) (msg string, ok bool) {
	if c == component.HealthPotion && p.Health.Full() {
		return MsgPotionNotNeeded, false
	}
	ApplyEffect(p, c.Effect())
	return c.Label(), true
}

// TakePowerUp applies the permanent upgrade and returns its label.
func TakePowerUp(p *component.Player, pu component.PowerUp) string {
	ApplyEffect(p, pu.Effect())
	return pu.Label()
}
