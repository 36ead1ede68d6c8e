package system

import (
	"room-crawler/internal/component"
	"room-crawler/internal/gamemap"
	"room-crawler/internal/generate"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK        MoveResult = iota // entered a new room along the path
	MoveBacktrack                   // stepped back the way we came
	MoveBlocked                     // no opening on that side
)

// TryMove walks p through the opening on side dir of its current room.
// The move history is a stack: stepping back along the last move pops it.
// Returns the outcome and, unless blocked, the room entered.
func TryMove(p *component.Player, rooms map[gamemap.Point]*generate.Room, dir gamemap.Direction) (MoveResult, *generate.Room) {
	cur := rooms[p.Pos]
	if cur == nil || !cur.Openings.Has(dir) {
		return MoveBlocked, nil
	}
	next := rooms[p.Pos.Step(dir)]
	if next == nil {
		return MoveBlocked, nil
	}
	p.Pos = next.Pos

	if n := len(p.Moves); n > 0 && p.Moves[n-1] == dir.Opposite() {
		p.Moves = p.Moves[:n-1]
		return MoveBacktrack, next
	}
	p.Moves = append(p.Moves, dir)
	return MoveOK, next
}
