package config

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatSeed renders seed the way it is shown to players: base36 of its
// unsigned 32-bit value.
func FormatSeed(seed int32) string {
	return strconv.FormatUint(uint64(uint32(seed)), 36)
}

// ParseSeed is the inverse of FormatSeed. Letters are case-insensitive.
func ParseSeed(s string) (int32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 36, 32)
	if err != nil {
		return 0, fmt.Errorf("seed %q is not a base36 32-bit value", s)
	}
	return int32(uint32(v)), nil
}
