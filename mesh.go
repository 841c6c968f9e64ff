package gridmesh

import "fmt"

// Layer tags. Faces are drawn in ascending layer order.
const (
	// LayerBackground tags untextured background triangles.
	LayerBackground int32 = -2

	// LayerReserved is never emitted. Glyph styles must use layers above it.
	LayerReserved int32 = -1
)

// Face is one triangle of a mesh.
type Face struct {
	// Vertices index into the mesh vertex list.
	Vertices [3]int

	// UVs index into the mesh UV list. Zero for background faces.
	UVs [3]int

	// Color is the glyph or background color.
	Color Color

	// Layer is the atlas layer for glyph faces, or LayerBackground.
	Layer int32
}

// IsBackground reports whether f belongs to the background plane.
func (f Face) IsBackground() bool {
	return f.Layer == LayerBackground
}

// Mesh is the geometry handed to a renderer.
type Mesh struct {
	Vertices []Vertex
	UVs      []UV
	Faces    []Face
}

// Validate checks that every face references existing vertices, and that
// every textured face references existing UVs.
func (m *Mesh) Validate() error {
	for i, f := range m.Faces {
		for _, v := range f.Vertices {
			if v < 0 || v >= len(m.Vertices) {
				return fmt.Errorf("%w: face %d vertex %d of %d", ErrIndexOutOfRange, i, v, len(m.Vertices))
			}
		}
		if f.IsBackground() {
			continue
		}
		for _, uv := range f.UVs {
			if uv < 0 || uv >= len(m.UVs) {
				return fmt.Errorf("%w: face %d uv %d of %d", ErrIndexOutOfRange, i, uv, len(m.UVs))
			}
		}
	}
	return nil
}

// Frame holds the meshes for one screen configuration: the glyph mesh and,
// when the background plane is enabled, the background mesh.
type Frame struct {
	// Glyphs carries the glyph lattice, the atlas UV lattice and glyph faces.
	Glyphs Mesh

	// Background carries the depth-offset lattice and background faces.
	// Nil when the background plane is disabled.
	Background *Mesh
}

// NewFrame generates fresh lattices and returns a Frame with no faces.
// Call it again after Resize.
func (b *Builder) NewFrame() *Frame {
	l := b.GenerateLattices()
	f := &Frame{
		Glyphs: Mesh{Vertices: l.Vertices, UVs: l.UVs},
	}
	if l.Background != nil {
		f.Background = &Mesh{Vertices: l.Background}
	}
	return f
}

// AddFaces routes faces to the mesh matching their layer. Background faces
// are dropped when the frame has no background mesh.
func (f *Frame) AddFaces(faces ...Face) {
	for _, face := range faces {
		if !face.IsBackground() {
			f.Glyphs.Faces = append(f.Glyphs.Faces, face)
			continue
		}
		if f.Background != nil {
			f.Background.Faces = append(f.Background.Faces, face)
		}
	}
}

// AddQuad adds a placed glyph and its background.
func (f *Frame) AddQuad(q Quad) {
	f.AddFaces(q.Glyph[0], q.Glyph[1], q.Background[0], q.Background[1])
}

// AddRun adds all faces of a placed run.
func (f *Frame) AddRun(r Run) {
	f.AddFaces(r.Faces...)
}

// Reset removes all faces but keeps the lattices.
func (f *Frame) Reset() {
	f.Glyphs.Faces = f.Glyphs.Faces[:0]
	if f.Background != nil {
		f.Background.Faces = f.Background.Faces[:0]
	}
}

// Meshes returns the frame's meshes in draw order: the background mesh
// first when present, then the glyph mesh.
func (f *Frame) Meshes() []Mesh {
	if f.Background == nil {
		return []Mesh{f.Glyphs}
	}
	return []Mesh{*f.Background, f.Glyphs}
}
