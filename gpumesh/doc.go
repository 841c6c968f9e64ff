// Package gpumesh prepares gridmesh meshes for GPU submission.
//
// Pack expands the indexed faces of one or more meshes into interleaved
// vertex data, ready to be copied into a vertex buffer and drawn as a
// triangle list. Faces are grouped by their layer tag only to give the
// renderer its draw order (background first, then atlas layers upward);
// meshes are not merged, culled or cached across frames.
//
// VertexLayout describes that data for a render pipeline, and ShaderSource /
// CompileShader provide a WGSL shader that consumes it.
//
// Creating devices, buffers and pipelines is left to the caller.
package gpumesh
