package gridmesh

import (
	"fmt"
	"unicode/utf8"
)

// Style carries the per-glyph drawing parameters.
type Style struct {
	// Foreground colors the glyph triangles.
	Foreground Color

	// Background colors the background triangles.
	Background Color

	// Layer is the atlas layer tag of the glyph triangles. Negative values
	// are reserved for the background plane and rejected.
	Layer int32
}

// Quad is a placed glyph: two textured triangles and the two untextured
// triangles of its background.
type Quad struct {
	Glyph      [2]Face
	Background [2]Face

	// Cell is the top-left cell covered by the glyph.
	Cell Cell

	// Width is the number of columns covered: 1 or 2.
	Width int
}

// Run is the result of placing a sequence of runes.
type Run struct {
	// Faces holds the glyph triangles of every placed rune, each pair
	// followed by its background pair when the background plane is enabled.
	Faces []Face

	// Start and End are linear cursor positions (col + row*cols) before the
	// first and after the last rune.
	Start, End int

	// Skipped counts runes dropped because they overflowed the grid.
	Skipped int
}

// CellAt converts a linear cursor position into a cell.
func (b *Builder) CellAt(pos int) Cell {
	cols := b.TerminalGridSize().Width
	if cols == 0 {
		return Cell{}
	}
	return Cell{Col: pos % cols, Row: pos / cols}
}

// PlaceGlyph places a single rune at the given cell. Columns past the end
// of a row continue on the following rows.
//
// It returns an *OverflowError, which matches ErrOverflow, if the cell lies
// outside the grid, if r is negative, or if a wide rune would start in the
// last column. A negative st.Layer yields ErrInvalidLayer.
func (b *Builder) PlaceGlyph(at Cell, r rune, st Style) (Quad, error) {
	if err := st.validate(); err != nil {
		return Quad{}, err
	}
	p := b.newPlacer(st)
	return p.place(p.linear(at), r)
}

// PlaceText places the runes of text starting at the given cell, advancing
// the cursor one column per narrow rune and two per wide rune.
//
// Runes that overflow the grid are skipped and logged; the cursor still
// advances past them and placement continues with the next rune. With a
// negative st.Layer nothing is placed: every rune counts as skipped and the
// cursor stays at Start.
func (b *Builder) PlaceText(at Cell, text string, st Style) Run {
	p := b.newPlacer(st)
	run := Run{Start: p.linear(at)}
	run.End = run.Start
	if err := st.validate(); err != nil {
		run.Skipped = utf8.RuneCountInString(text)
		Logger().Warn("gridmesh: text skipped", "err", err, "runes", run.Skipped)
		return run
	}
	for _, r := range text {
		p.step(&run, r)
	}
	return run
}

// PlaceRunes is like PlaceText for a rune slice.
func (b *Builder) PlaceRunes(at Cell, runes []rune, st Style) Run {
	p := b.newPlacer(st)
	run := Run{Start: p.linear(at)}
	run.End = run.Start
	if err := st.validate(); err != nil {
		run.Skipped = len(runes)
		Logger().Warn("gridmesh: text skipped", "err", err, "runes", run.Skipped)
		return run
	}
	for _, r := range runes {
		p.step(&run, r)
	}
	return run
}

// validate rejects layer tags that collide with the background plane.
func (st Style) validate() error {
	if st.Layer <= LayerReserved {
		return fmt.Errorf("%w: %d", ErrInvalidLayer, st.Layer)
	}
	return nil
}

// placer snapshots the grid sizes for one placement call.
type placer struct {
	b     *Builder
	grid  Size
	atlas Size
	style Style
}

func (b *Builder) newPlacer(st Style) *placer {
	return &placer{
		b:     b,
		grid:  b.TerminalGridSize(),
		atlas: b.AtlasGridSize(),
		style: st,
	}
}

func (p *placer) linear(c Cell) int {
	return c.Col + c.Row*p.grid.Width
}

// step places r at the run cursor and advances it.
func (p *placer) step(run *Run, r rune) {
	q, err := p.place(run.End, r)
	if err != nil {
		run.Skipped++
		run.End += p.b.Advance(r)
		Logger().Warn("gridmesh: glyph skipped", "err", err)
		return
	}
	run.Faces = append(run.Faces, q.Glyph[0], q.Glyph[1])
	if p.b.background {
		run.Faces = append(run.Faces, q.Background[0], q.Background[1])
	}
	run.End += q.Width
}

// place computes the quad for r at linear cursor position idx.
func (p *placer) place(idx int, r rune) (Quad, error) {
	cols, rows := p.grid.Width, p.grid.Height
	wide := p.b.Wide(r)

	if cols == 0 || idx < 0 {
		return Quad{}, &OverflowError{Cell: Cell{Col: idx}, Rune: r, Wide: wide, Grid: p.grid}
	}

	// idx % cols is always inside the row. Negative runes have no atlas cell.
	x, y := idx%cols, idx/cols
	if y >= rows || (wide && x == cols-1) || r < 0 {
		return Quad{}, &OverflowError{Cell: Cell{Col: x, Row: y}, Rune: r, Wide: wide, Grid: p.grid}
	}

	n := 1
	if wide {
		n = 2
	}

	topLeft := y*(cols+1) + x
	bottomLeft := (y+1)*(cols+1) + x

	// Two UV points per atlas lattice point: n=1 lands on the half cell,
	// n=2 on the next full cell.
	ac := Cell{Col: int(r) % p.atlas.Width, Row: int(r) / p.atlas.Width}
	uvStride := (p.atlas.Width + 1) * 2
	uvTopLeft := ac.Row*uvStride + ac.Col*2
	uvBottomLeft := (ac.Row+1)*uvStride + ac.Col*2

	fg, bg := p.style.Foreground, p.style.Background
	upper := [3]int{topLeft, topLeft + n, bottomLeft}
	lower := [3]int{topLeft + n, bottomLeft, bottomLeft + n}

	return Quad{
		Glyph: [2]Face{
			{Vertices: upper, UVs: [3]int{uvTopLeft, uvTopLeft + n, uvBottomLeft}, Color: fg, Layer: p.style.Layer},
			{Vertices: lower, UVs: [3]int{uvTopLeft + n, uvBottomLeft, uvBottomLeft + n}, Color: fg, Layer: p.style.Layer},
		},
		Background: [2]Face{
			{Vertices: upper, Color: bg, Layer: LayerBackground},
			{Vertices: lower, Color: bg, Layer: LayerBackground},
		},
		Cell:  Cell{Col: x, Row: y},
		Width: n,
	}, nil
}
