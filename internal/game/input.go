package game

import (
	"github.com/gdamore/tcell/v2"

	"room-crawler/internal/gamemap"
)

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveE
	ActionMoveS
	ActionMoveW
	ActionReset
	ActionAddRoom
	ActionRevealNext
	ActionHideLast
	ActionToggleDebug
	ActionQuit
)

// KeyToAction maps a tcell key event to a game action.
func KeyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveN
	case tcell.KeyRight:
		return ActionMoveE
	case tcell.KeyDown:
		return ActionMoveS
	case tcell.KeyLeft:
		return ActionMoveW
	case tcell.KeyTab:
		return ActionToggleDebug
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	}

	switch ev.Rune() {
	case 'r', 'R':
		return ActionReset
	case 'k', 'K':
		return ActionAddRoom
	case 'l', 'L':
		return ActionRevealNext
	case 'j', 'J':
		return ActionHideLast
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// actionToDirection converts a movement action to its side.
func actionToDirection(a Action) (gamemap.Direction, bool) {
	switch a {
	case ActionMoveN:
		return gamemap.North, true
	case ActionMoveE:
		return gamemap.East, true
	case ActionMoveS:
		return gamemap.South, true
	case ActionMoveW:
		return gamemap.West, true
	}
	return 0, false
}
