package gridmesh

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// WidthFunc reports how many terminal columns a rune occupies.
// Any result of 2 or more classifies the rune as wide.
type WidthFunc func(r rune) int

// EastAsianWidth classifies runes by their East Asian Width property.
//
// Wide and Fullwidth runes take two columns. Control and private-use runes
// have no reliable width and are also treated as wide, so a glyph drawn for
// them never bleeds into the next cell. Invalid runes and NUL take one
// column, as does everything else including combining marks.
func EastAsianWidth(r rune) int {
	if r == 0 || !utf8.ValidRune(r) {
		return 1
	}
	if unicode.IsControl(r) || unicode.Is(unicode.Co, r) {
		return 2
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

// NarrowWidth treats every rune as a single column. Useful for atlases
// that only carry half-width glyphs.
func NarrowWidth(rune) int { return 1 }
