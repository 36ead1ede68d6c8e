package game

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestRunLogMarshal(t *testing.T) {
	log := newRunLog("1z141z3")
	log.RoomsBuilt = 9
	log.BattlesWon = 2
	log.CauseOfDefeat = "slime"
	log.ConsumablesUsed["health potion"] = 2
	log.PowerUpsTaken["foresight"] = 1

	enc := zapcore.NewMapObjectEncoder()
	if err := log.MarshalLogObject(enc); err != nil {
		t.Fatalf("MarshalLogObject: %v", err)
	}

	if enc.Fields["seed"] != "1z141z3" {
		t.Errorf("seed = %v", enc.Fields["seed"])
	}
	if enc.Fields["rooms_built"] != 9 || enc.Fields["battles_won"] != 2 {
		t.Errorf("counters = %v / %v", enc.Fields["rooms_built"], enc.Fields["battles_won"])
	}
	if enc.Fields["cause_of_defeat"] != "slime" {
		t.Errorf("cause_of_defeat = %v", enc.Fields["cause_of_defeat"])
	}
	consumables, ok := enc.Fields["consumables"].(map[string]interface{})
	if !ok || consumables["health potion"] != 2 {
		t.Errorf("consumables = %#v", enc.Fields["consumables"])
	}
}

func TestRunLogOmitsEmptyCause(t *testing.T) {
	enc := zapcore.NewMapObjectEncoder()
	if err := newRunLog("0").MarshalLogObject(enc); err != nil {
		t.Fatal(err)
	}
	if _, ok := enc.Fields["cause_of_defeat"]; ok {
		t.Error("cause_of_defeat should be omitted when the run was not lost")
	}
}
