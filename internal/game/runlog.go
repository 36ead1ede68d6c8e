package game

import (
	"sort"

	"go.uber.org/zap/zapcore"
)

// RunLog records statistics gathered during one run.
type RunLog struct {
	Seed            string
	RoomsBuilt      int
	RoomsVisited    int
	Moves           int
	BattlesWon      int
	BattlesLost     int
	Stalemates      int
	ConsumablesUsed map[string]int // consumable name → use count
	PowerUpsTaken   map[string]int // power-up name → pick count
	DamageDealt     int
	DamageTaken     int
	CauseOfDefeat   string // name of the enemy that won, if any
}

func newRunLog(seed string) RunLog {
	return RunLog{
		Seed:            seed,
		ConsumablesUsed: make(map[string]int),
		PowerUpsTaken:   make(map[string]int),
	}
}

// MarshalLogObject writes the run summary as structured log fields.
func (l RunLog) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("seed", l.Seed)
	enc.AddInt("rooms_built", l.RoomsBuilt)
	enc.AddInt("rooms_visited", l.RoomsVisited)
	enc.AddInt("moves", l.Moves)
	enc.AddInt("battles_won", l.BattlesWon)
	enc.AddInt("battles_lost", l.BattlesLost)
	enc.AddInt("stalemates", l.Stalemates)
	enc.AddInt("damage_dealt", l.DamageDealt)
	enc.AddInt("damage_taken", l.DamageTaken)
	if l.CauseOfDefeat != "" {
		enc.AddString("cause_of_defeat", l.CauseOfDefeat)
	}
	if err := enc.AddObject("consumables", countMap(l.ConsumablesUsed)); err != nil {
		return err
	}
	return enc.AddObject("power_ups", countMap(l.PowerUpsTaken))
}

type countMap map[string]int

func (m countMap) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		enc.AddInt(k, m[k])
	}
	return nil
}
