package gamemap

// Direction is one of the four compass sides of a room.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every side in ordinal order.
var Directions = [4]Direction{North, East, South, West}

// Opposite returns the side facing d.
func (d Direction) Opposite() Direction {
	return Directions[(int(d)+2)%len(Directions)]
}

// Delta converts d to a unit (dx, dy) step. North is up (negative Y).
func (d Direction) Delta() (int, int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return "unknown"
}

// Point is a cell coordinate on the room grid.
type Point struct {
	X, Y int
}

// Step returns the neighbouring cell in direction d.
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}
