// SPDX-License-Identifier: MIT
// Package: tessella/hexgrid
//
// hexgrid.go — implementation of Build(width, height, classify).
//
// Contract:
//   - width ≥ 1 and height ≥ 1 (else ErrTooFewCells), classify non-nil
//     (else ErrNilClassifier).
//   - Cells are emitted in row-major order (j asc, then i asc); within a cell
//     the corner order is fixed (CCW from the bottom corner), so vertex and
//     face indices are deterministic for identical inputs.
//   - classify(i, j) true → six-triangle rosette, false → whole hexagon.
//   - The returned tiling is fully validated (see validate.go); on any
//     failure Build returns nil and a sentinel-wrapped error.
//   - Never panics; classify is treated as pure and is called exactly once
//     per cell.
//
// Complexity:
//   - Time: O(W×H) cells, each emitting ≤ 7 vertices and ≤ 6 faces.
//   - Space: O(W×H) for the vertex index and output geometry.
//
// Determinism:
//   - Stable vertex order: first-seen during row-major cell emission.
//   - Stable face order: per cell, hexagon or triangles CCW from the bottom
//     corner.
//   - Stable edge order: first-seen while walking face boundaries in order.

package hexgrid

import (
	"fmt"

	"github.com/katalvlaran/tessella/core"
)

// File-local constants: method tag and lattice minima (no magic literals).
const (
	methodBuild = "Build"
	minDim      = 1
	hexSides    = 6
)

// cornerOffsets lists the six cell corners in half-unit lattice coordinates,
// CCW starting from the bottom corner. Shared corners of adjacent cells land
// on identical integer pairs, which is what makes dedup exact.
var cornerOffsets = [hexSides][2]int{
	{0, -2}, {1, -1}, {1, 1}, {0, 2}, {-1, 1}, {-1, -1},
}

// Build lays out a width×height rectangular hexagon lattice, applies classify
// to every cell to pick its motif, and returns the validated tiling.
//
// The classifier selects between exactly two local motifs: a rosette of six
// equilateral triangles around the cell center (true) and a single regular
// hexagon (false). The produced patch is checked for global consistency and
// is returned all-or-nothing.
func Build(width, height int, classify func(i, j int) bool) (*core.Tiling, error) {
	// 1) Validate parameters early (fail fast; no partial work).
	if width < minDim || height < minDim {
		return nil, fmt.Errorf("%s: width=%d, height=%d (each must be ≥ %d): %w",
			methodBuild, width, height, minDim, ErrTooFewCells)
	}
	if classify == nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, ErrNilClassifier)
	}

	// 2) Emit all cells in deterministic row-major order.
	asm := newAssembler(width, height)
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			asm.emitCell(core.Coord{I: i, J: j}, classify(i, j))
		}
	}

	// 3) Derive edges from face boundaries (first-seen order).
	t := asm.finish()

	// 4) Validate the whole patch; reject rather than return malformed geometry.
	if err := validate(t); err != nil {
		return nil, err
	}

	return t, nil
}

// assembler accumulates vertices, faces and edges while cells are emitted.
// The vertex index maps exact lattice coordinates to their first-seen slot.
type assembler struct {
	t     *core.Tiling
	index map[core.Vertex]int
}

func newAssembler(width, height int) *assembler {
	return &assembler{
		t: &core.Tiling{Width: width, Height: height},
		// Every cell contributes ≤ 7 vertices; most corners are shared.
		index: make(map[core.Vertex]int, width*height*4),
	}
}

// vertexAt returns the index of the vertex at lattice position (a, b),
// inserting it on first sight. Complexity: O(1) amortized.
func (s *assembler) vertexAt(a, b int) int {
	v := core.Vertex{A: a, B: b}
	if idx, ok := s.index[v]; ok {
		return idx
	}
	idx := len(s.t.Vertices)
	s.t.Vertices = append(s.t.Vertices, v)
	s.index[v] = idx

	return idx
}

// emitCell adds the faces of one lattice cell: either a single hexagon or a
// rosette of six triangles fanned around the cell center.
func (s *assembler) emitCell(cell core.Coord, rosette bool) {
	// Cell center in half-unit lattice coordinates (rhombic arrangement:
	// every row shifts right by one half-cell relative to the previous one).
	ca := 2*cell.I + cell.J
	cb := 3 * cell.J

	var corners [hexSides]int
	for k, off := range cornerOffsets {
		corners[k] = s.vertexAt(ca+off[0], cb+off[1])
	}

	if !rosette {
		s.t.Faces = append(s.t.Faces, core.Face{Cell: cell, Verts: corners[:]})

		return
	}

	center := s.vertexAt(ca, cb)
	for k := 0; k < hexSides; k++ {
		s.t.Faces = append(s.t.Faces, core.Face{
			Cell:  cell,
			Verts: []int{center, corners[k], corners[(k+1)%hexSides]},
		})
	}
}

// finish derives the undirected edge set from the face boundaries and returns
// the completed (not yet validated) tiling. Edges are appended in first-seen
// order while faces are walked in emission order. Complexity: O(Σ face sizes).
func (s *assembler) finish() *core.Tiling {
	seen := make(map[[2]int]int, len(s.t.Faces)*hexSides/2)
	for fi, f := range s.t.Faces {
		n := len(f.Verts)
		for k := 0; k < n; k++ {
			u, v := f.Verts[k], f.Verts[(k+1)%n]
			if u > v {
				u, v = v, u
			}
			key := [2]int{u, v}
			ei, ok := seen[key]
			if !ok {
				ei = len(s.t.Edges)
				s.t.Edges = append(s.t.Edges, core.Edge{U: u, V: v})
				seen[key] = ei
			}
			s.t.Edges[ei].Faces = append(s.t.Edges[ei].Faces, fi)
		}
	}

	return s.t
}
