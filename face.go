package gridmesh

import (
	"golang.org/x/image/font"
)

// CellSizeFromFace derives the atlas glyph cell size from a monospaced
// font face: twice the advance of a narrow reference rune wide, and one
// line high. The doubled width leaves room for wide glyphs in the same
// atlas cell grid.
//
// It returns a *ConfigError if the face has no glyph for 'M' or reports a
// non-positive advance or height.
func CellSizeFromFace(face font.Face) (Size, error) {
	adv, ok := face.GlyphAdvance('M')
	if !ok || adv <= 0 {
		return Size{}, &ConfigError{Field: "Glyph.Width", Reason: "face has no advance for 'M'"}
	}
	h := face.Metrics().Height
	if h <= 0 {
		return Size{}, &ConfigError{Field: "Glyph.Height", Reason: "face reports no line height"}
	}
	return Size{Width: 2 * adv.Ceil(), Height: h.Ceil()}, nil
}
