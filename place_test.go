package gridmesh

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

var testStyle = Style{
	Foreground: White,
	Background: RGB(0, 0, 1),
	Layer:      0,
}

// wideW treats 'W' as the only wide rune, keeping wide glyphs inside the
// 16x16 test atlas.
func wideW(r rune) int {
	if r == 'W' {
		return 2
	}
	return 1
}

func TestPlaceGlyph_NarrowAtOrigin(t *testing.T) {
	b := newTestBuilder(t)

	q, err := b.PlaceGlyph(Cell{}, 'A', testStyle)
	if err != nil {
		t.Fatalf("PlaceGlyph() error = %v", err)
	}

	if q.Glyph[0].Vertices != [3]int{0, 1, 11} {
		t.Errorf("Glyph[0].Vertices = %v, want [0 1 11]", q.Glyph[0].Vertices)
	}
	if q.Glyph[1].Vertices != [3]int{1, 11, 12} {
		t.Errorf("Glyph[1].Vertices = %v, want [1 11 12]", q.Glyph[1].Vertices)
	}

	// 'A' is atlas cell (1,4); UV stride is (16+1)*2 = 34.
	if q.Glyph[0].UVs != [3]int{138, 139, 172} {
		t.Errorf("Glyph[0].UVs = %v, want [138 139 172]", q.Glyph[0].UVs)
	}
	if q.Glyph[1].UVs != [3]int{139, 172, 173} {
		t.Errorf("Glyph[1].UVs = %v, want [139 172 173]", q.Glyph[1].UVs)
	}

	for i, f := range q.Glyph {
		if f.Color != White || f.Layer != 0 {
			t.Errorf("Glyph[%d] color/layer = %v/%d", i, f.Color, f.Layer)
		}
	}
	for i, f := range q.Background {
		if f.Layer != LayerBackground {
			t.Errorf("Background[%d].Layer = %d, want %d", i, f.Layer, LayerBackground)
		}
		if f.Color != testStyle.Background {
			t.Errorf("Background[%d].Color = %v, want %v", i, f.Color, testStyle.Background)
		}
		if f.UVs != [3]int{} {
			t.Errorf("Background[%d].UVs = %v, want zero", i, f.UVs)
		}
		if f.Vertices != q.Glyph[i].Vertices {
			t.Errorf("Background[%d].Vertices = %v, want %v", i, f.Vertices, q.Glyph[i].Vertices)
		}
	}

	if q.Cell != (Cell{}) || q.Width != 1 {
		t.Errorf("Cell/Width = %v/%d, want {0 0}/1", q.Cell, q.Width)
	}
}

func TestPlaceGlyph_Wide(t *testing.T) {
	b := newTestBuilder(t, WithWidthFunc(wideW))

	q, err := b.PlaceGlyph(Cell{Col: 3, Row: 2}, 'W', testStyle)
	if err != nil {
		t.Fatalf("PlaceGlyph() error = %v", err)
	}

	// top-left = 2*11+3 = 25, bottom-left = 36, right edge is two points away.
	if q.Glyph[0].Vertices != [3]int{25, 27, 36} {
		t.Errorf("Glyph[0].Vertices = %v, want [25 27 36]", q.Glyph[0].Vertices)
	}
	if q.Glyph[1].Vertices != [3]int{27, 36, 38} {
		t.Errorf("Glyph[1].Vertices = %v, want [27 36 38]", q.Glyph[1].Vertices)
	}

	// 'W' = 87 is atlas cell (7,5): 5*34+14 = 184, 6*34+14 = 218.
	if q.Glyph[0].UVs != [3]int{184, 186, 218} {
		t.Errorf("Glyph[0].UVs = %v, want [184 186 218]", q.Glyph[0].UVs)
	}
	if q.Glyph[1].UVs != [3]int{186, 218, 220} {
		t.Errorf("Glyph[1].UVs = %v, want [186 218 220]", q.Glyph[1].UVs)
	}
	if q.Width != 2 {
		t.Errorf("Width = %d, want 2", q.Width)
	}
}

func TestPlaceGlyph_ColumnWraps(t *testing.T) {
	b := newTestBuilder(t)

	q, err := b.PlaceGlyph(Cell{Col: 12, Row: 0}, 'a', testStyle)
	if err != nil {
		t.Fatalf("PlaceGlyph() error = %v", err)
	}
	if q.Cell != (Cell{Col: 2, Row: 1}) {
		t.Errorf("Cell = %v, want {2 1}", q.Cell)
	}
}

func TestPlaceGlyph_Overflow(t *testing.T) {
	b := newTestBuilder(t)

	tests := []struct {
		name string
		at   Cell
		r    rune
	}{
		{"wide in last column", Cell{Col: 9, Row: 0}, '世'},
		{"wide in last column of last row", Cell{Col: 9, Row: 4}, '世'},
		{"wide control in last column", Cell{Col: 9, Row: 2}, '\a'},
		{"row past the end", Cell{Col: 0, Row: 5}, 'a'},
		{"column wraps past the end", Cell{Col: 10, Row: 4}, 'a'},
		{"negative", Cell{Col: -1, Row: 0}, 'a'},
		{"negative rune", Cell{Col: 0, Row: 0}, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.PlaceGlyph(tt.at, tt.r, testStyle)
			if !errors.Is(err, ErrOverflow) {
				t.Fatalf("PlaceGlyph() error = %v, want ErrOverflow", err)
			}
			var oerr *OverflowError
			if !errors.As(err, &oerr) {
				t.Fatalf("PlaceGlyph() error = %T, want *OverflowError", err)
			}
			if oerr.Rune != tt.r {
				t.Errorf("OverflowError.Rune = %U, want %U", oerr.Rune, tt.r)
			}
			if oerr.Grid != (Size{10, 5}) {
				t.Errorf("OverflowError.Grid = %v, want {10 5}", oerr.Grid)
			}
		})
	}
}

func TestPlaceGlyph_WideLastColumnAnyRune(t *testing.T) {
	b := newTestBuilder(t, WithWidthFunc(func(rune) int { return 2 }))
	for r := rune(0); r < 512; r++ {
		if _, err := b.PlaceGlyph(Cell{Col: 9, Row: 1}, r, testStyle); !errors.Is(err, ErrOverflow) {
			t.Fatalf("PlaceGlyph(%U) error = %v, want ErrOverflow", r, err)
		}
	}
}

func TestPlaceGlyph_NarrowLastColumn(t *testing.T) {
	b := newTestBuilder(t)
	q, err := b.PlaceGlyph(Cell{Col: 9, Row: 4}, 'z', testStyle)
	if err != nil {
		t.Fatalf("PlaceGlyph() error = %v", err)
	}
	// 4*11+9 = 53, 5*11+9 = 64; 64+1 is the last lattice point.
	if q.Glyph[1].Vertices != [3]int{54, 64, 65} {
		t.Errorf("Glyph[1].Vertices = %v, want [54 64 65]", q.Glyph[1].Vertices)
	}
}

func TestPlaceGlyph_ZeroGrid(t *testing.T) {
	b, err := New(Size{}, Size{256, 256}, Size{16, 16})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := b.PlaceGlyph(Cell{}, 'a', testStyle); !errors.Is(err, ErrOverflow) {
		t.Errorf("PlaceGlyph() on empty grid error = %v, want ErrOverflow", err)
	}
	if run := b.PlaceText(Cell{}, "ab", testStyle); run.Skipped != 2 || len(run.Faces) != 0 {
		t.Errorf("PlaceText() on empty grid = %d faces, %d skipped", len(run.Faces), run.Skipped)
	}
}

func TestPlaceGlyph_RoundTrip(t *testing.T) {
	b := newTestBuilder(t)
	grid := b.TerminalGridSize()

	for row := 0; row < grid.Height; row++ {
		for col := 0; col < grid.Width; col++ {
			q, err := b.PlaceGlyph(Cell{Col: col, Row: row}, 'x', testStyle)
			if err != nil {
				t.Fatalf("PlaceGlyph(%d,%d) error = %v", col, row, err)
			}
			if got := b.CellOfVertex(q.Glyph[0].Vertices[0]); got != (Cell{Col: col, Row: row}) {
				t.Fatalf("CellOfVertex(top-left of (%d,%d)) = %v", col, row, got)
			}
		}
	}
}

func TestPlaceText_Empty(t *testing.T) {
	b := newTestBuilder(t)
	before := b.Config()

	run := b.PlaceText(Cell{Col: 3, Row: 1}, "", testStyle)
	if len(run.Faces) != 0 {
		t.Errorf("PlaceText(\"\") = %d faces, want 0", len(run.Faces))
	}
	if run.Start != 13 || run.End != 13 || run.Skipped != 0 {
		t.Errorf("PlaceText(\"\") Start/End/Skipped = %d/%d/%d, want 13/13/0", run.Start, run.End, run.Skipped)
	}
	if b.Config() != before {
		t.Errorf("PlaceText mutated config: %v -> %v", before, b.Config())
	}
}

func TestPlaceText_Advance(t *testing.T) {
	b := newTestBuilder(t)

	tests := []struct {
		name string
		text string
		want int // cells consumed
	}{
		{"ascii", "hello", 5},
		{"cjk", "世界", 4},
		{"mixed", "a世b界c", 7},
		{"fullwidth", "ＡＢ", 4},
		{"combining", "e\u0301", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := b.PlaceText(Cell{Col: 0, Row: 1}, tt.text, testStyle)
			if run.Skipped != 0 {
				t.Fatalf("Skipped = %d, want 0", run.Skipped)
			}

			sum := 0
			for _, r := range tt.text {
				sum += b.Advance(r)
			}
			if sum != tt.want {
				t.Errorf("sum of advances = %d, want %d", sum, tt.want)
			}
			if run.End-run.Start != sum {
				t.Errorf("End-Start = %d, want %d", run.End-run.Start, sum)
			}
			if want := 2 * len([]rune(tt.text)); len(run.Faces) != want {
				t.Errorf("len(Faces) = %d, want %d", len(run.Faces), want)
			}
		})
	}
}

func TestPlaceText_MatchesPlaceGlyph(t *testing.T) {
	b := newTestBuilder(t)
	run := b.PlaceText(Cell{Col: 8, Row: 0}, "abc", testStyle)

	pos := run.Start
	for i, r := range "abc" {
		q, err := b.PlaceGlyph(b.CellAt(pos), r, testStyle)
		if err != nil {
			t.Fatalf("PlaceGlyph(%c) error = %v", r, err)
		}
		if run.Faces[2*i] != q.Glyph[0] || run.Faces[2*i+1] != q.Glyph[1] {
			t.Errorf("rune %c: PlaceText faces differ from PlaceGlyph", r)
		}
		pos += q.Width
	}
	if b.CellAt(run.End) != (Cell{Col: 1, Row: 1}) {
		t.Errorf("end cursor = %v, want {1 1}", b.CellAt(run.End))
	}
}

func TestPlaceText_SkipsOverflowAndContinues(t *testing.T) {
	b := newTestBuilder(t)

	// Nine narrow runes fill columns 0-8; the wide rune would straddle the
	// edge and is dropped, 'x' continues after it.
	run := b.PlaceText(Cell{}, "abcdefghi世x", testStyle)

	if run.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", run.Skipped)
	}
	if len(run.Faces) != 20 {
		t.Fatalf("len(Faces) = %d, want 20", len(run.Faces))
	}
	if run.End != 12 {
		t.Errorf("End = %d, want 12", run.End)
	}

	last := run.Faces[len(run.Faces)-2]
	if got := b.CellOfVertex(last.Vertices[0]); got != (Cell{Col: 1, Row: 1}) {
		t.Errorf("'x' placed at %v, want {1 1}", got)
	}
}

func TestPlaceText_PastLastRow(t *testing.T) {
	b := newTestBuilder(t)

	run := b.PlaceText(Cell{Col: 8, Row: 4}, "abcd", testStyle)
	if run.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", run.Skipped)
	}
	if len(run.Faces) != 4 {
		t.Errorf("len(Faces) = %d, want 4", len(run.Faces))
	}
}

func TestPlaceText_Background(t *testing.T) {
	b := newTestBuilder(t, WithBackground())

	run := b.PlaceText(Cell{}, "ab", testStyle)
	if len(run.Faces) != 8 {
		t.Fatalf("len(Faces) = %d, want 8", len(run.Faces))
	}
	for i, f := range run.Faces {
		wantBG := i%4 >= 2
		if f.IsBackground() != wantBG {
			t.Errorf("Faces[%d].IsBackground() = %v, want %v", i, f.IsBackground(), wantBG)
		}
	}
}

func TestPlaceRunes(t *testing.T) {
	b := newTestBuilder(t)
	a := b.PlaceText(Cell{Col: 2, Row: 3}, "a世b", testStyle)
	r := b.PlaceRunes(Cell{Col: 2, Row: 3}, []rune("a世b"), testStyle)

	if a.Start != r.Start || a.End != r.End || len(a.Faces) != len(r.Faces) {
		t.Fatalf("PlaceRunes = %+v, PlaceText = %+v", r, a)
	}
	for i := range a.Faces {
		if a.Faces[i] != r.Faces[i] {
			t.Errorf("Faces[%d] differ", i)
		}
	}
}

func TestPlaceText_LogsSkipped(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	b := newTestBuilder(t)
	b.PlaceText(Cell{Col: 9, Row: 0}, "世", testStyle)

	if !strings.Contains(buf.String(), "glyph skipped") {
		t.Errorf("expected skip diagnostic, got: %s", buf.String())
	}
}

func TestPlaceText_UnresolvedAtlasCell(t *testing.T) {
	b := newTestBuilder(t)

	// U+4E16 lies far outside the 16x16 atlas; placement still succeeds.
	q, err := b.PlaceGlyph(Cell{}, '世', testStyle)
	if err != nil {
		t.Fatalf("PlaceGlyph() error = %v", err)
	}
	m := Mesh{Vertices: b.GenerateLattices().Vertices, UVs: b.GenerateLattices().UVs, Faces: q.Glyph[:]}
	if err := m.Validate(); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Validate() error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestPlaceGlyph_InvalidLayer(t *testing.T) {
	b := newTestBuilder(t)

	for _, layer := range []int32{LayerBackground, LayerReserved, -7} {
		st := testStyle
		st.Layer = layer
		if _, err := b.PlaceGlyph(Cell{}, 'a', st); !errors.Is(err, ErrInvalidLayer) {
			t.Errorf("PlaceGlyph(layer %d) error = %v, want ErrInvalidLayer", layer, err)
		}
	}
}

func TestPlaceText_InvalidLayer(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	b := newTestBuilder(t, WithBackground())
	st := testStyle
	st.Layer = LayerBackground

	for _, run := range []Run{
		b.PlaceText(Cell{Col: 1, Row: 1}, "ab\u4e16", st),
		b.PlaceRunes(Cell{Col: 1, Row: 1}, []rune("ab\u4e16"), st),
	} {
		if len(run.Faces) != 0 {
			t.Errorf("len(Faces) = %d, want 0", len(run.Faces))
		}
		if run.Skipped != 3 {
			t.Errorf("Skipped = %d, want 3", run.Skipped)
		}
		if run.Start != 11 || run.End != run.Start {
			t.Errorf("Start, End = %d, %d, want 11, 11", run.Start, run.End)
		}
	}
	if n := strings.Count(buf.String(), "text skipped"); n != 2 {
		t.Errorf("logged %d text skips, want 2: %s", n, buf.String())
	}

	f := b.NewFrame()
	f.AddRun(b.PlaceText(Cell{}, "a", st))
	if len(f.Glyphs.Faces) != 0 || len(f.Background.Faces) != 0 {
		t.Errorf("frame faces = %d glyph, %d background, want none", len(f.Glyphs.Faces), len(f.Background.Faces))
	}
}

func TestPlaceRunes_NegativeRune(t *testing.T) {
	b := newTestBuilder(t)
	run := b.PlaceRunes(Cell{}, []rune{'a', -5, 'b'}, testStyle)

	if run.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", run.Skipped)
	}
	if len(run.Faces) != 4 {
		t.Errorf("len(Faces) = %d, want 4", len(run.Faces))
	}
	for i, f := range run.Faces {
		for _, uv := range f.UVs {
			if uv < 0 {
				t.Errorf("Faces[%d].UVs = %v, want non-negative", i, f.UVs)
			}
		}
	}
}

func BenchmarkPlaceText(b *testing.B) {
	bld, err := New(Size{1920, 1080}, Size{1024, 1024}, Size{16, 32}, WithBackground())
	if err != nil {
		b.Fatal(err)
	}
	line := strings.Repeat("the quick brown fox 世界 ", 8)
	b.ReportAllocs()
	for b.Loop() {
		_ = bld.PlaceText(Cell{}, line, testStyle)
	}
}
