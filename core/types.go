// SPDX-License-Identifier: MIT
// Package: tessella/core
//
// types.go — exact lattice geometry and the Tiling aggregate produced by the
// hexgrid builder.
//
// Contract:
//   - Vertex equality is exact integer equality; no float comparisons anywhere.
//   - Face vertex indices are CCW; Edge endpoints satisfy U < V.
//   - A Tiling is immutable once built.

package core

import "math"

// unitA is the real-plane span of one lattice step along the A axis (√3/2
// side lengths). unitB is the span of one step along B (half a side length).
var unitA = math.Sqrt(3) / 2

const unitB = 0.5

// Point is a position in the real plane, in units of the polygon side length.
type Point struct {
	X, Y float64
}

// Vertex identifies a tiling vertex by exact half-unit lattice coordinates.
// Two vertices are the same point iff their (A, B) pairs are equal, which is
// what makes cross-cell vertex sharing exact and deterministic.
type Vertex struct {
	A, B int
}

// Pos maps the lattice coordinates to real plane coordinates.
// Complexity: O(1).
func (v Vertex) Pos() Point {
	return Point{X: float64(v.A) * unitA, Y: float64(v.B) * unitB}
}

// Coord addresses one cell of the rectangular hexagon lattice:
// I indexes columns, J indexes rows; both are non-negative.
type Coord struct {
	I, J int
}

// Face is one polygon of the tiling, stored as CCW vertex indices into
// Tiling.Vertices. Cell records which lattice cell emitted the face.
type Face struct {
	Cell  Coord
	Verts []int
}

// Sides returns the number of polygon sides (3 for triangles, 6 for hexagons).
// Complexity: O(1).
func (f Face) Sides() int { return len(f.Verts) }

// Edge is an undirected edge between vertex indices U < V.
// Faces lists the incident face indices: one for boundary edges, two for
// interior edges. A valid tiling never has more than two.
type Edge struct {
	U, V  int
	Faces []int
}

// Boundary reports whether the edge lies on the tiling boundary.
// Complexity: O(1).
func (e Edge) Boundary() bool { return len(e.Faces) == 1 }

// Tiling is the validated output geometry: a finite patch of the plane tiled
// by regular triangles and hexagons. It is immutable once built; all methods
// are read-only. Width and Height record the lattice dimensions that produced
// it. Vertices, Faces and Edges are in deterministic (first-seen) order, so
// two tilings built from identical inputs are structurally identical.
type Tiling struct {
	Width, Height int
	Vertices      []Vertex
	Faces         []Face
	Edges         []Edge
}
