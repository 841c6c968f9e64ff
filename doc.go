// Package gridmesh converts a fixed-size character grid into mesh geometry
// for GPU rendering with a bitmap font atlas.
//
// # Overview
//
// A terminal-like surface is drawn as a lattice of shared vertices, one per
// cell corner, and a lattice of atlas texture coordinates. Each glyph is a
// quad of two triangles that index into both lattices, so no vertex is ever
// duplicated between neighbouring cells.
//
// Three grids are involved:
//   - screen pixels, set by the window and changed with Builder.Resize
//   - terminal cells, half a glyph wide and one glyph high, scaled
//   - atlas cells, one glyph each, laid out row-major by codepoint
//
// Narrow glyphs cover one terminal column and the left half of their atlas
// cell. Wide glyphs (East Asian Wide and Fullwidth) cover two columns and
// the whole atlas cell.
//
// # Quick Start
//
//	b, err := gridmesh.New(
//	    gridmesh.Size{Width: 800, Height: 600}, // screen
//	    gridmesh.Size{Width: 512, Height: 512}, // atlas texture
//	    gridmesh.Size{Width: 16, Height: 16},   // atlas cell
//	    gridmesh.WithBackground(),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	frame := b.NewFrame()
//	frame.AddRun(b.PlaceText(gridmesh.Cell{}, "hello, 世界", gridmesh.Style{
//	    Foreground: gridmesh.White,
//	    Background: gridmesh.Black,
//	}))
//
//	for _, m := range frame.Meshes() {
//	    upload(m.Vertices, m.UVs, m.Faces)
//	}
//
// # Overflow
//
// Builder.PlaceGlyph returns an error matching ErrOverflow when the glyph
// does not fit, so the caller can wrap or scroll. Builder.PlaceText skips
// such glyphs, logs them and keeps going.
//
// # Concurrency
//
// A Builder has no locks. Any number of goroutines may query it, but
// Resize needs exclusive access.
package gridmesh
