package render

import (
	"fmt"
	"strings"

	"room-crawler/assets"
)

// messageRows is how many recent messages stay on screen.
const messageRows = 5

// drawStatus renders the player lines at the top and returns the last row used.
func (r *Renderer) drawStatus(v View) int {
	glyph := assets.GlyphPlayer
	if v.Dead {
		glyph = assets.GlyphDead
	}
	x := r.putGlyph(0, 0, glyph, StyleText)

	hearts := "hearts"
	if v.Health == 1 {
		hearts = "heart"
	}
	r.drawText(x+1, 0, fmt.Sprintf("%s has %d %s left (max %d)", v.Name, v.Health, hearts, v.MaxHealth), StyleText)

	line := fmt.Sprintf("sword: %d damage", v.Attack)
	if v.Shield > 0 {
		line += fmt.Sprintf("  shield: %d", v.Shield)
	}
	r.drawText(0, 1, line, StyleText)

	if len(v.Effects) > 0 {
		r.drawText(0, 2, "effects: "+strings.Join(v.Effects, ", "), StyleGood)
	} else {
		r.drawText(0, 2, "effects: none", StyleDim)
	}

	if v.Dead {
		r.drawText(0, 3, "You were defeated. [r] new dungeon  [q] quit", StyleBad)
		return 3
	}
	r.drawText(0, 3, "arrows move  [k] add room  [l]/[j] reveal/hide  [r] reset  [tab] debug  [q] quit", StyleDim)
	return 3
}

// drawRooms lists revealed rooms below the status block.
func (r *Renderer) drawRooms(v View, y int) {
	r.drawHLine(y, StyleDim)
	y++
	r.drawText(0, y, fmt.Sprintf("rooms revealed: %d/%d", len(v.Rooms), v.Total), StyleText)
	y++

	_, h := r.screen.Size()
	last := h - messageRows - 2
	for i, room := range v.Rooms {
		if y > last {
			return
		}
		if y == last && i < len(v.Rooms)-1 {
			r.drawText(3, y, fmt.Sprintf("… %d more", len(v.Rooms)-i), StyleDim)
			return
		}
		glyph := assets.GlyphEmpty
		switch {
		case strings.HasPrefix(room.Event, "battle"):
			glyph = assets.GlyphBattle
		case strings.HasPrefix(room.Event, "consumable"):
			glyph = assets.GlyphConsumable
		case strings.HasPrefix(room.Event, "power-up"):
			glyph = assets.GlyphPowerUp
		}
		if room.Here {
			r.putGlyph(0, y, assets.GlyphPlayer, StyleText)
		}
		x := 3 + r.putGlyph(3, y, glyph, StyleText)
		text := fmt.Sprintf(" %2d (%d,%d) exits %s", i+1, room.X, room.Y, strings.Join(room.Openings, "/"))
		if room.Event != "" {
			text += "  " + room.Event
		}
		r.drawText(x, y, text, StyleText)
		y++
	}
}

// drawMessages renders the most recent messages at the bottom, newest last.
func (r *Renderer) drawMessages(messages []string) {
	_, h := r.screen.Size()
	top := h - messageRows
	r.drawHLine(top-1, StyleDim)

	start := len(messages) - messageRows
	if start < 0 {
		start = 0
	}
	for i, msg := range messages[start:] {
		style := StyleMessage
		if start+i == len(messages)-1 {
			style = StyleLatest
		}
		r.drawText(0, top+i, msg, style)
	}
}

// drawDebug puts the seed and grid facts in the top-right corner.
func (r *Renderer) drawDebug(v View) {
	w, _ := r.screen.Size()
	lines := []string{
		fmt.Sprintf("{Seed: %s}", v.Seed),
		fmt.Sprintf("grid %dx%d", v.GridW, v.GridH),
	}
	if v.DeadEnd {
		lines = append(lines, "dead end")
	}
	for i, l := range lines {
		x := w - len(l) - 1
		if x < 0 {
			x = 0
		}
		r.drawText(x, i, l, StyleDebug)
	}
}
