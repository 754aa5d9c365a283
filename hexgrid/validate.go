// SPDX-License-Identifier: MIT
// Package: tessella/hexgrid
//
// validate.go — global consistency checks for a freshly built patch.
//
// Contract:
//   - validate inspects the complete tiling; it never mutates it.
//   - The first violation found is reported with its location wrapped onto
//     the matching sentinel (ErrInconsistent / ErrOpenBoundary); Build then
//     discards the geometry. No partial results escape.
//
// Checks, in order:
//   1. Edge sharing: every edge bounds one or two faces, never more.
//   2. Vertex angles: the interior angles meeting at a vertex sum to at most
//      a full turn; exactly 360° marks an interior vertex.
//   3. Interior configurations: each interior vertex reads as one of the four
//      valid triangle/hexagon vertex types (3⁶, 3⁴.6, 3².6², 6³).
//   4. Closed boundary: each boundary vertex touches exactly two boundary
//      edges, so boundary edges form closed loops.
//
// Complexity: O(V + E + Σ face sizes) time, O(V) extra space.

package hexgrid

import (
	"fmt"

	"github.com/katalvlaran/tessella/core"
)

const methodValidate = "Build/validate" // context tag for error wraps

// maxEdgeFaces is the planarity bound: an edge separates at most two faces.
const maxEdgeFaces = 2

// boundaryDegree is the number of boundary edges at a boundary vertex of a
// closed patch outline.
const boundaryDegree = 2

// validInteriorConfigs enumerates the canonical vertex configurations a
// triangle/hexagon tiling can produce at an interior vertex. Anything else
// means the motifs do not fit together.
var validInteriorConfigs = map[string]struct{}{
	"3.3.3.3.3.3": {}, // 3⁶
	"3.3.3.3.6":   {}, // 3⁴.6
	"3.3.6.6":     {}, // 3².6²
	"6.6.6":       {}, // 6³
}

func validate(t *core.Tiling) error {
	// 1) Edge sharing + per-vertex boundary-edge degree in one pass.
	boundaryDeg := make([]int, len(t.Vertices))
	for ei, e := range t.Edges {
		if len(e.Faces) > maxEdgeFaces {
			return fmt.Errorf("%s: edge %d (%v–%v) bounded by %d faces: %w",
				methodValidate, ei, t.Vertices[e.U], t.Vertices[e.V], len(e.Faces), ErrInconsistent)
		}
		if e.Boundary() {
			boundaryDeg[e.U]++
			boundaryDeg[e.V]++
		}
	}

	// 2+3) Vertex angle sums and interior configurations.
	idx := t.VertexFaces()
	for v := range t.Vertices {
		sum := t.AngleSumAt(idx[v])
		if sum > core.FullTurnDeg {
			return fmt.Errorf("%s: vertex %v angle sum %d° exceeds a full turn: %w",
				methodValidate, t.Vertices[v], sum, ErrInconsistent)
		}
		if sum == core.FullTurnDeg {
			cfg := t.ConfigAt(v, idx[v])
			if _, ok := validInteriorConfigs[cfg]; !ok {
				return fmt.Errorf("%s: vertex %v has invalid configuration %q: %w",
					methodValidate, t.Vertices[v], cfg, ErrInconsistent)
			}

			continue
		}

		// 4) Boundary vertex: the outline must pass straight through it.
		if boundaryDeg[v] != boundaryDegree {
			return fmt.Errorf("%s: boundary vertex %v has %d boundary edges (want %d): %w",
				methodValidate, t.Vertices[v], boundaryDeg[v], boundaryDegree, ErrOpenBoundary)
		}
	}

	return nil
}
