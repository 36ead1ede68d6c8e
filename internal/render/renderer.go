package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// RoomLine is one revealed room in the room list.
type RoomLine struct {
	X, Y     int
	Openings []string
	Event    string // empty when the room holds nothing
	Here     bool
}

// View is everything the console shows for one frame.
type View struct {
	Name      string
	Health    int
	MaxHealth int
	Attack    int
	Shield    int
	Effects   []string
	Dead      bool
	Rooms     []RoomLine // revealed rooms, first room first
	Total     int        // rooms in the chain
	Debug     bool
	Seed      string
	GridW     int
	GridH     int
	DeadEnd   bool
	Messages  []string
}

// Renderer draws a View onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw clears the screen and renders v.
func (r *Renderer) Draw(v View) {
	r.screen.Clear()
	y := r.drawStatus(v)
	r.drawRooms(v, y+1)
	r.drawMessages(v.Messages)
	if v.Debug {
		r.drawDebug(v)
	}
	r.screen.Show()
}

// drawText writes text at (x, y) and returns the column after it. Wide runes
// take two cells; anything past the right edge is cut off.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	w, _ := r.screen.Size()
	if x >= w {
		return x
	}
	text = runewidth.Truncate(text, w-x, "…")
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
	return x
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at (x, y) and
// returns its width in cells.
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) int {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return 0
	}
	r.screen.SetContent(x, y, runes[0], runes[1:], style)
	width := runewidth.StringWidth(glyph)
	if width == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
	return width
}

func (r *Renderer) drawHLine(y int, style tcell.Style) {
	w, _ := r.screen.Size()
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}
