package tui

import (
	"strings"
	"sync"
)

// glyphSet holds the symbols drawn around each outline row. Fonts vary, so
// an ASCII fallback is offered next to the Unicode set.
type glyphSet struct {
	arrow  string
	tick   string
	twisty string
}

var (
	unicodeGlyphs = glyphSet{arrow: "→", tick: "✓", twisty: "▸"}
	asciiGlyphs   = glyphSet{arrow: ">", tick: "x", twisty: "+"}
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = unicodeGlyphs
)

// applyGlyphPreference selects the set named by the glyphs setting. Unknown
// names leave the current set alone; config validation rejects them earlier.
func applyGlyphPreference(v string) {
	var gs glyphSet
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "unicode", "utf8":
		gs = unicodeGlyphs
	case "ascii":
		gs = asciiGlyphs
	default:
		return
	}
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	defer glyphsMu.RUnlock()
	return currentGlyphs
}

func glyphArrow() string           { return glyphs().arrow }
func glyphTick() string            { return glyphs().tick }
func glyphTwistyCollapsed() string { return glyphs().twisty }
