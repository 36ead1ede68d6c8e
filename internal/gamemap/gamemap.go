package gamemap

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a cell outside the grid is marked.
var ErrOutOfBounds = errors.New("cell out of bounds")

// ErrOccupied is returned when a cell that already holds a room is marked.
var ErrOccupied = errors.New("cell already holds a room")

// Grid records which cells already hold a room.
type Grid struct {
	Width, Height int
	cells         [][]bool // indexed [x][y]
}

// New creates an empty Grid.
func New(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([][]bool, width)
	for x := range cells {
		cells[x] = make([]bool, height)
	}
	return &Grid{Width: width, Height: height, cells: cells}
}

// FromViewport sizes a grid for a viewport measured in pixels, leaving one
// column of margin and two rows for the status area.
func FromViewport(viewW, viewH, roomSize int) *Grid {
	if roomSize <= 0 {
		return New(0, 0)
	}
	return New(viewW/roomSize-1, viewH/roomSize-2)
}

// InBounds reports whether p is within the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Visited reports whether p already holds a room. Out-of-bounds cells are not visited.
func (g *Grid) Visited(p Point) bool {
	if !g.InBounds(p) {
		return false
	}
	return g.cells[p.X][p.Y]
}

// Free reports whether a room can be placed at p.
func (g *Grid) Free(p Point) bool {
	return g.InBounds(p) && !g.cells[p.X][p.Y]
}

// Mark flags p as holding a room. Each cell is marked at most once.
func (g *Grid) Mark(p Point) error {
	if !g.InBounds(p) {
		return fmt.Errorf("mark (%d,%d): %w", p.X, p.Y, ErrOutOfBounds)
	}
	if g.cells[p.X][p.Y] {
		return fmt.Errorf("mark (%d,%d): %w", p.X, p.Y, ErrOccupied)
	}
	g.cells[p.X][p.Y] = true
	return nil
}

// Count returns the number of visited cells.
func (g *Grid) Count() int {
	n := 0
	for x := range g.cells {
		for _, v := range g.cells[x] {
			if v {
				n++
			}
		}
	}
	return n
}

// Reset clears every cell.
func (g *Grid) Reset() {
	for x := range g.cells {
		clear(g.cells[x])
	}
}

// Center returns the cell the first room is placed on.
func (g *Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height/2 - 1}
}
