package gpumesh

import (
	"encoding/binary"
	"fmt"
	"math"
	"slices"

	"github.com/gogpu/gridmesh"
)

// Vertex is one expanded triangle corner.
type Vertex struct {
	Position [4]float32
	UV       [2]float32
	Color    [4]float32
}

// Batch holds the vertices of all faces sharing one layer.
// Every three consecutive vertices form a triangle.
type Batch struct {
	// Layer is the face layer tag. gridmesh.LayerBackground batches are
	// untextured.
	Layer int32

	Vertices []Vertex
}

// Textured reports whether the batch samples the atlas.
func (b *Batch) Textured() bool {
	return b.Layer != gridmesh.LayerBackground
}

// Triangles returns the number of triangles in the batch.
func (b *Batch) Triangles() int {
	return len(b.Vertices) / 3
}

// Pack expands the faces of the given meshes into per-layer batches sorted
// by ascending layer, so the background batch comes first. The grouping
// only fixes draw order; meshes are not merged or culled.
//
// A face referencing a vertex that does not exist fails the whole call with
// an error matching gridmesh.ErrIndexOutOfRange. A textured face whose UVs
// fall outside the mesh, such as a glyph with no cell in the atlas, is
// skipped and logged instead.
func Pack(meshes ...gridmesh.Mesh) ([]Batch, error) {
	byLayer := make(map[int32]*Batch)
	skipped := 0
	for i := range meshes {
		m := &meshes[i]
		for j, f := range m.Faces {
			if err := checkVertices(m, j, f); err != nil {
				return nil, err
			}
			if !f.IsBackground() && !uvsInRange(m, f) {
				skipped++
				gridmesh.Logger().Warn("gpumesh: face skipped",
					"mesh", i, "face", j, "uvs", f.UVs, "len", len(m.UVs))
				continue
			}
			b, ok := byLayer[f.Layer]
			if !ok {
				b = &Batch{Layer: f.Layer}
				byLayer[f.Layer] = b
			}
			b.Vertices = appendFace(b.Vertices, m, f)
		}
	}

	layers := make([]int32, 0, len(byLayer))
	for l := range byLayer {
		layers = append(layers, l)
	}
	slices.Sort(layers)

	batches := make([]Batch, 0, len(layers))
	for _, l := range layers {
		batches = append(batches, *byLayer[l])
	}

	gridmesh.Logger().Debug("gpumesh: packed",
		"meshes", len(meshes), "batches", len(batches), "skipped", skipped)
	return batches, nil
}

// checkVertices reports a face j of m that indexes past the vertex list.
func checkVertices(m *gridmesh.Mesh, j int, f gridmesh.Face) error {
	for _, v := range f.Vertices {
		if v < 0 || v >= len(m.Vertices) {
			return fmt.Errorf("%w: face %d vertex %d of %d", gridmesh.ErrIndexOutOfRange, j, v, len(m.Vertices))
		}
	}
	return nil
}

func uvsInRange(m *gridmesh.Mesh, f gridmesh.Face) bool {
	for _, uv := range f.UVs {
		if uv < 0 || uv >= len(m.UVs) {
			return false
		}
	}
	return true
}

// appendFace appends the three corners of f.
func appendFace(dst []Vertex, m *gridmesh.Mesh, f gridmesh.Face) []Vertex {
	color := f.Color.Array()
	for k := 0; k < 3; k++ {
		v := Vertex{
			Position: m.Vertices[f.Vertices[k]],
			Color:    color,
		}
		if !f.IsBackground() {
			v.UV = m.UVs[f.UVs[k]]
		}
		dst = append(dst, v)
	}
	return dst
}

// Bytes serializes the batch vertices into raw little-endian bytes
// suitable for GPU upload, VertexStride bytes per vertex.
func (b *Batch) Bytes() []byte {
	if len(b.Vertices) == 0 {
		return nil
	}
	data := make([]byte, len(b.Vertices)*VertexStride)
	off := 0
	for i := range b.Vertices {
		writeVertex(data[off:], &b.Vertices[i])
		off += VertexStride
	}
	return data
}

// writeVertex writes a single vertex into buf.
func writeVertex(buf []byte, v *Vertex) {
	off := 0
	for _, f := range v.Position {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(f))
		off += 4
	}
	for _, f := range v.UV {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(f))
		off += 4
	}
	for _, f := range v.Color {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(f))
		off += 4
	}
}

// Indices returns a sequential index list for drawing the batch with an
// index buffer of IndexFormat.
func (b *Batch) Indices() []uint32 {
	idx := make([]uint32, len(b.Vertices))
	for i := range idx {
		idx[i] = uint32(i) //nolint:gosec // vertex count is bounded by the grid size
	}
	return idx
}

// IndexBytes serializes Indices into raw little-endian bytes.
func (b *Batch) IndexBytes() []byte {
	data := make([]byte, len(b.Vertices)*4)
	for i := range b.Vertices {
		binary.LittleEndian.PutUint32(data[i*4:], uint32(i)) //nolint:gosec // see Indices
	}
	return data
}
