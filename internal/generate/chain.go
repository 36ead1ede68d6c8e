package generate

import (
	"errors"
	"fmt"
	"math/rand"

	"room-crawler/internal/component"
	"room-crawler/internal/gamemap"
)

// ErrDeadEnd is returned when every side of a room is blocked.
var ErrDeadEnd = errors.New("dead end")

// EventWeights sets the relative odds of each encounter once a room rolls one.
type EventWeights struct {
	Battle     int
	Consumable int
	PowerUp    int
}

// Config drives generation of one dungeon.
type Config struct {
	Rooms          int
	EventThreshold float64 // a room gets an event when its roll in [0.1, 1.0) exceeds this
	Weights        EventWeights
	EnemyTable     []component.EnemyStats
	Rand           *rand.Rand
}

// Openings is the set of sides a room can be left through.
type Openings uint8

// Add opens side d.
func (o *Openings) Add(d gamemap.Direction) { *o |= 1 << d }

// Has reports whether side d is open.
func (o Openings) Has(d gamemap.Direction) bool { return o&(1<<d) != 0 }

// List returns the open sides in compass order.
func (o Openings) List() []gamemap.Direction {
	var out []gamemap.Direction
	for _, d := range gamemap.Directions {
		if o.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// Room is one cell of the dungeon chain.
type Room struct {
	Pos      gamemap.Point
	Openings Openings
	Event    component.Event
}

// Result is the outcome of Generate.
type Result struct {
	Rooms   []*Room
	DeadEnd bool // the walk stopped before reaching cfg.Rooms
}

// Generate lays out a chain of cfg.Rooms rooms on grid, starting near its centre.
// A dead end stops the chain early; the rooms built so far are still returned.
func Generate(cfg *Config, grid *gamemap.Grid) (Result, error) {
	if cfg.Rand == nil {
		return Result{}, errors.New("generate: nil random source")
	}
	if cfg.Rooms < 1 {
		return Result{}, fmt.Errorf("generate: room count %d must be at least 1", cfg.Rooms)
	}
	start := grid.Center()
	if !grid.Free(start) {
		return Result{}, fmt.Errorf("generate: start cell (%d,%d) unavailable on %dx%d grid",
			start.X, start.Y, grid.Width, grid.Height)
	}
	if err := grid.Mark(start); err != nil {
		return Result{}, fmt.Errorf("generate: %w", err)
	}

	res := Result{Rooms: []*Room{{Pos: start}}}
	for len(res.Rooms) < cfg.Rooms {
		room, err := Extend(cfg, grid, res.Rooms[len(res.Rooms)-1])
		if errors.Is(err, ErrDeadEnd) {
			res.DeadEnd = true
			break
		}
		if err != nil {
			return res, err
		}
		res.Rooms = append(res.Rooms, room)
	}
	return res, nil
}

// Extend attaches a new room to prev on a random free side. Blocked sides are
// dropped and another untried side is drawn until one fits or none remain.
// On ErrDeadEnd neither prev nor grid is modified.
func Extend(cfg *Config, grid *gamemap.Grid, prev *Room) (*Room, error) {
	remaining := append([]gamemap.Direction(nil), gamemap.Directions[:]...)
	for len(remaining) > 0 {
		i := cfg.Rand.Intn(len(remaining))
		side := remaining[i]
		pos := prev.Pos.Step(side)
		if !grid.Free(pos) {
			remaining = append(remaining[:i], remaining[i+1:]...)
			continue
		}
		if err := grid.Mark(pos); err != nil {
			return nil, fmt.Errorf("extend: %w", err)
		}
		prev.Openings.Add(side)

		room := &Room{Pos: pos, Event: rollEvent(cfg)}
		room.Openings.Add(side.Opposite())
		return room, nil
	}
	return nil, ErrDeadEnd
}

// Index maps grid positions to rooms for movement lookups.
func Index(rooms []*Room) map[gamemap.Point]*Room {
	idx := make(map[gamemap.Point]*Room, len(rooms))
	for _, r := range rooms {
		idx[r.Pos] = r
	}
	return idx
}
