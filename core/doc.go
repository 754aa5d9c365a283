// Package core defines the fundamental value types shared by all tessella
// subpackages: lattice vertices, faces, edges, and the validated Tiling.
//
// What:
//
//   - Vertex: exact half-unit lattice coordinates (A, B); no float epsilons.
//   - Face: a polygon as CCW vertex indices, tagged with its source cell.
//   - Edge: an undirected vertex pair plus its incident faces (1 = boundary).
//   - Tiling: the immutable output geometry of the hexgrid builder.
//
// Why:
//
//   - Shared vertices between adjacent cells must coincide exactly; integer
//     lattice coordinates make deduplication deterministic and exact.
//   - Vertex configurations (the cyclic polygon sequence around a vertex,
//     e.g. "3.3.6.6") are the local consistency invariant of every uniform
//     tessellation; computing them lives here so that both validation and
//     callers use one definition.
//
// Coordinates:
//
//   - One lattice step along A spans √3/2 side lengths, one step along B
//     spans 1/2. Vertex.Pos() maps to real plane coordinates for rendering.
//
// Complexity:
//
//   - VertexFaces:     O(V + Σ face sizes), Memory: O(V + Σ face sizes).
//   - VertexConfig:    O(V + F) per call; use VertexFaces + ConfigAt to amortize.
//   - InteriorConfigs: O(V + Σ face sizes) for the whole tiling.
//
// Errors:
//
//   - ErrVertexIndex: a vertex index is out of range.
//   - ErrFaceIndex: a face index is out of range.
package core
