package factory

import (
	"testing"

	"room-crawler/internal/component"
	"room-crawler/internal/gamemap"
)

var testSpec = PlayerSpec{Name: "toto", MaxHealth: 10, Attack: 1}

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(testSpec, gamemap.Point{X: 8, Y: 4})

	if p.Name != "toto" {
		t.Errorf("Name = %q; want toto", p.Name)
	}
	if p.Health.Current != 10 || p.Health.Max != 10 {
		t.Errorf("Health = %d/%d; want 10/10", p.Health.Current, p.Health.Max)
	}
	if p.Combat.Attack != 1 || p.Combat.Shield != 0 {
		t.Errorf("Combat = %+v; want attack 1, no shield", p.Combat)
	}
	if p.Pos != (gamemap.Point{X: 8, Y: 4}) {
		t.Errorf("Pos = %v; want (8,4)", p.Pos)
	}
	if len(p.Moves) != 0 || len(p.Effects.Active) != 0 {
		t.Error("new player must start with no moves and no effects")
	}
}

func TestResetPlayer(t *testing.T) {
	p := NewPlayer(testSpec, gamemap.Point{})
	p.Health = component.Health{Current: 2, Max: 14}
	p.Combat = component.Combat{Attack: 6, Shield: 3}
	p.Effects.Active = []component.ActiveEffect{{Kind: component.EffectForesight}}
	p.Moves = []gamemap.Direction{gamemap.North, gamemap.East}

	ResetPlayer(p, testSpec, gamemap.Point{X: 3, Y: 3})

	if p.Health.Current != 10 || p.Health.Max != 10 {
		t.Errorf("Health after reset = %d/%d; want 10/10", p.Health.Current, p.Health.Max)
	}
	if p.Combat.Attack != 1 || p.Combat.Shield != 0 {
		t.Errorf("Combat after reset = %+v", p.Combat)
	}
	if len(p.Effects.Active) != 0 || len(p.Moves) != 0 {
		t.Error("reset must clear effects and moves")
	}
	if p.Pos != (gamemap.Point{X: 3, Y: 3}) {
		t.Errorf("Pos after reset = %v", p.Pos)
	}
}

func TestNewEnemy(t *testing.T) {
	e := NewEnemy(component.EnemyStats{Name: "slime", Health: 2, Attack: 1, Weight: 5})
	if e.Name != "slime" || e.Attack != 1 {
		t.Errorf("enemy = %+v", e)
	}
	if e.Health.Current != 2 || e.Health.Max != 2 {
		t.Errorf("enemy health = %d/%d; want 2/2", e.Health.Current, e.Health.Max)
	}
}
