package render

import "github.com/gdamore/tcell/v2"

// Styles used by the console. Emoji keep their own colours, so only text
// is tinted.
var (
	StyleText    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	StyleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	StyleMessage = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	StyleLatest  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	StyleGood    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	StyleBad     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	StyleDebug   = tcell.StyleDefault.Foreground(tcell.ColorAqua)
)
