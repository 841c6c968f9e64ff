package gridmesh

// Vertex is a homogeneous screen-space position (x, y, z, w) in pixels.
type Vertex [4]float32

// UV is a normalized atlas texture coordinate.
type UV [2]float32

// Depths of the two vertex lattices.
const (
	GlyphDepth      float32 = 0.0
	BackgroundDepth float32 = 0.5
)

// Lattices holds the shared point grids that faces index into.
type Lattices struct {
	// Vertices has (cols+1)*(rows+1) points, row-major over the terminal grid.
	Vertices []Vertex

	// UVs has 2*(atlasCols+1)*(atlasRows+1) points, row-major over the atlas
	// grid. Each atlas lattice point contributes its own coordinate followed
	// by the coordinate half a cell to its right.
	UVs []UV

	// Background mirrors Vertices at BackgroundDepth. Nil unless the
	// background plane is enabled.
	Background []Vertex
}

// GenerateLattices builds the vertex and UV lattices for the current
// configuration. The result is freshly allocated on every call.
func (b *Builder) GenerateLattices() Lattices {
	l := Lattices{
		Vertices: b.vertexLattice(GlyphDepth),
		UVs:      b.uvLattice(),
	}
	if b.background {
		l.Background = b.vertexLattice(BackgroundDepth)
	}
	Logger().Debug("gridmesh: lattices generated",
		"vertices", len(l.Vertices), "uvs", len(l.UVs), "background", len(l.Background))
	return l
}

// vertexLattice returns one point per terminal cell corner at depth z.
func (b *Builder) vertexLattice(z float32) []Vertex {
	grid := b.TerminalGridSize()
	cell := b.ScaledGlyphSize()

	vs := make([]Vertex, 0, (grid.Width+1)*(grid.Height+1))
	for y := 0; y <= grid.Height; y++ {
		for x := 0; x <= grid.Width; x++ {
			vs = append(vs, Vertex{
				float32(x * cell.Width),
				float32(y * cell.Height),
				z,
				1,
			})
		}
	}
	return vs
}

// uvLattice returns two points per atlas cell corner: the corner itself and
// the point half a cell to its right, where a narrow glyph's right edge lies.
func (b *Builder) uvLattice() []UV {
	grid := b.AtlasGridSize()
	w := float32(grid.Width)
	h := float32(grid.Height)

	uvs := make([]UV, 0, 2*(grid.Width+1)*(grid.Height+1))
	for y := 0; y <= grid.Height; y++ {
		v := float32(y) / h
		for x := 0; x <= grid.Width; x++ {
			uvs = append(uvs,
				UV{float32(x) / w, v},
				UV{(float32(x) + 0.5) / w, v},
			)
		}
	}
	return uvs
}
