package component

import "room-crawler/internal/gamemap"

// Player is the walking adventurer.
type Player struct {
	Name    string
	Health  Health
	Combat  Combat
	Effects Effects
	Pos     gamemap.Point       // grid cell of the current room
	Moves   []gamemap.Direction // path from the first room, backtracking pops
}

// Enemy is a live opponent inside a battle.
type Enemy struct {
	Name   string
	Health Health
	Attack int
}
