// Package hexgrid builds validated tilings from a rectangular hexagon
// lattice, selecting one of two local motifs per cell.
//
// What:
//
//   - Build(width, height, classify) lays out width×height hexagonal cells
//     and applies classify(i, j) to each: true places a six-triangle rosette,
//     false places a whole regular hexagon.
//   - The result is a *core.Tiling whose vertices, faces and edges are in
//     deterministic first-seen order, or a descriptive error — never a
//     partially built or inconsistent tiling.
//
// Why:
//
//   - Every uniform tessellation mixing triangles and hexagons on this
//     lattice is described by one such classifier; see package uniform for
//     the named variants.
//
// Lattice:
//
//   - Cell (i, j) is centered at (2i+j, 3j) in half-unit lattice coordinates,
//     so every row is offset by the same half-cell shift and all corners land
//     on exact integer positions shared with neighboring cells.
//
// Validation (all-or-nothing):
//
//   - width ≥ 1 and height ≥ 1, classify non-nil.
//   - No edge bounds more than two faces.
//   - Every interior vertex (angle sum 360°) has a valid local vertex
//     configuration: 3⁶, 3⁴.6, 3².6² or 6³.
//   - Every boundary vertex has exactly two incident boundary edges, so the
//     patch boundary is a set of closed loops.
//
// Complexity:
//
//   - Build: O(W×H) time and memory (each cell emits at most 7 vertices,
//     6 faces and 12 edges).
//
// Errors:
//
//   - ErrTooFewCells: width or height below 1.
//   - ErrNilClassifier: classify is nil.
//   - ErrInconsistent: an edge or vertex violates local consistency.
//   - ErrOpenBoundary: the patch boundary does not close.
package hexgrid
