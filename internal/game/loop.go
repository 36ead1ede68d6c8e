package game

import (
	"github.com/gdamore/tcell/v2"

	"room-crawler/internal/render"
)

// Run drives the session from screen events until the player quits or the
// screen is finalized.
func (s *Session) Run(screen tcell.Screen) {
	r := render.NewRenderer(screen)
	for {
		r.Draw(s.View())

		switch ev := screen.PollEvent().(type) {
		case nil:
			s.finishRun("disconnected")
			return
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if !s.Handle(KeyToAction(ev)) {
				return
			}
		}
	}
}

// View snapshots the session for the console.
func (s *Session) View() render.View {
	p := s.player
	v := render.View{
		Name:      p.Name,
		Health:    p.Health.Current,
		MaxHealth: p.Health.Max,
		Attack:    p.Combat.Attack,
		Shield:    p.Combat.Shield,
		Effects:   p.Effects.Names(),
		Dead:      s.state == StateDead,
		Total:     len(s.rooms),
		Debug:     s.debug,
		Seed:      s.SeedString(),
		GridW:     s.grid.Width,
		GridH:     s.grid.Height,
		DeadEnd:   s.deadEnd,
		Messages:  s.messages,
	}
	for _, room := range s.rooms[:s.revealed+1] {
		line := render.RoomLine{X: room.Pos.X, Y: room.Pos.Y, Here: room.Pos == p.Pos}
		for _, d := range room.Openings.List() {
			line.Openings = append(line.Openings, d.String())
		}
		if room.Event.Pending() {
			line.Event = room.Event.String()
		}
		v.Rooms = append(v.Rooms, line)
	}
	return v
}
