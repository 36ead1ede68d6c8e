package assets

import _ "embed"

// DefaultConfig is the built-in game configuration, overlaid by user files.
//
//go:embed default.yaml
var DefaultConfig []byte

// Emoji shown in the console status lines.
const (
	GlyphPlayer     = "🧙"
	GlyphBattle     = "👾"
	GlyphConsumable = "🧪"
	GlyphPowerUp    = "💎"
	GlyphEmpty      = "🚪"
	GlyphDead       = "💀"
	GlyphShield     = "🛡"
)
