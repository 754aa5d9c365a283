// SPDX-License-Identifier: MIT
// Package: tessella/core
//
// methods.go — read-only accessors and vertex-configuration computation.
//
// Contract:
//   - All methods are pure; the Tiling is never mutated.
//   - Index-taking methods validate their argument and return sentinel errors;
//     they never panic.
//   - Vertex configurations are canonical strings: face sizes around the
//     vertex joined by '.', normalized over rotation and reflection for
//     interior vertices (cyclic) and over reflection only for boundary
//     vertices (linear). Example: "3.3.6.6".
//
// Determinism:
//   - Incident faces are ordered by the angle of their centroid around the
//     vertex; angles are distinct for non-degenerate polygons, so the order
//     (and therefore every config string) is stable.

package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// FullTurnDeg is the interior angle sum (in degrees) at an interior vertex.
const FullTurnDeg = 360

// InteriorAngleDeg returns the interior angle, in whole degrees, of a regular
// polygon with the given number of sides (60 for triangles, 120 for hexagons).
// Exact for every polygon whose angle is a whole number of degrees.
// Complexity: O(1).
func InteriorAngleDeg(sides int) int {
	return (sides - 2) * 180 / sides
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (t *Tiling) VertexCount() int { return len(t.Vertices) }

// FaceCount returns the number of faces. Complexity: O(1).
func (t *Tiling) FaceCount() int { return len(t.Faces) }

// EdgeCount returns the number of edges. Complexity: O(1).
func (t *Tiling) EdgeCount() int { return len(t.Edges) }

// VertexFaces builds the vertex→incident-faces index. Face indices appear in
// ascending order per vertex. Rebuilt on every call; hold on to the result
// when inspecting many vertices.
// Complexity: O(V + Σ face sizes) time and memory.
func (t *Tiling) VertexFaces() [][]int {
	idx := make([][]int, len(t.Vertices))
	for fi, f := range t.Faces {
		for _, vi := range f.Verts {
			idx[vi] = append(idx[vi], fi)
		}
	}

	return idx
}

// Polygon returns the real-plane outline of face f in vertex order.
// Returns ErrFaceIndex if f is out of range.
// Complexity: O(sides).
func (t *Tiling) Polygon(f int) ([]Point, error) {
	if f < 0 || f >= len(t.Faces) {
		return nil, fmt.Errorf("Polygon(%d): %w", f, ErrFaceIndex)
	}
	pts := make([]Point, len(t.Faces[f].Verts))
	for i, vi := range t.Faces[f].Verts {
		pts[i] = t.Vertices[vi].Pos()
	}

	return pts, nil
}

// BoundingBox returns the min/max corners of the tiling in the real plane.
// An empty tiling yields two zero points.
// Complexity: O(V).
func (t *Tiling) BoundingBox() (min, max Point) {
	if len(t.Vertices) == 0 {
		return Point{}, Point{}
	}
	min = t.Vertices[0].Pos()
	max = min
	for _, v := range t.Vertices[1:] {
		p := v.Pos()
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}

	return min, max
}

// AngleSumAt sums the interior angles (degrees) of the given incident faces.
// Intended for use with a VertexFaces index.
// Complexity: O(len(incident)).
func (t *Tiling) AngleSumAt(incident []int) int {
	sum := 0
	for _, fi := range incident {
		sum += InteriorAngleDeg(t.Faces[fi].Sides())
	}

	return sum
}

// AngleSum returns the interior angle sum (degrees) at vertex v: exactly 360
// for interior vertices, less for boundary vertices.
// Returns ErrVertexIndex if v is out of range.
// Complexity: O(V + Σ face sizes); prefer VertexFaces + AngleSumAt in loops.
func (t *Tiling) AngleSum(v int) (int, error) {
	if v < 0 || v >= len(t.Vertices) {
		return 0, fmt.Errorf("AngleSum(%d): %w", v, ErrVertexIndex)
	}

	return t.AngleSumAt(t.VertexFaces()[v]), nil
}

// IsInterior reports whether vertex v is an interior vertex (angle sum 360°).
// Returns ErrVertexIndex if v is out of range.
func (t *Tiling) IsInterior(v int) (bool, error) {
	sum, err := t.AngleSum(v)
	if err != nil {
		return false, err
	}

	return sum == FullTurnDeg, nil
}

// ConfigAt computes the canonical vertex configuration of vertex v given its
// incident faces (as produced by VertexFaces). Returns "" for an isolated
// vertex, which cannot occur in a built tiling.
// Complexity: O(k log k + k·sides), k = len(incident).
func (t *Tiling) ConfigAt(v int, incident []int) string {
	if len(incident) == 0 {
		return ""
	}
	p := t.Vertices[v].Pos()

	// Order faces by the direction of their centroid as seen from the vertex.
	type slot struct {
		angle float64
		sides int
	}
	slots := make([]slot, len(incident))
	for i, fi := range incident {
		f := t.Faces[fi]
		var cx, cy float64
		for _, vi := range f.Verts {
			q := t.Vertices[vi].Pos()
			cx += q.X
			cy += q.Y
		}
		n := float64(len(f.Verts))
		slots[i] = slot{
			angle: math.Atan2(cy/n-p.Y, cx/n-p.X),
			sides: f.Sides(),
		}
	}
	sort.Slice(slots, func(a, b int) bool { return slots[a].angle < slots[b].angle })

	sizes := make([]int, len(slots))
	for i, s := range slots {
		sizes[i] = s.sides
	}

	return canonicalConfig(sizes, t.AngleSumAt(incident) == FullTurnDeg)
}

// VertexConfig returns the canonical vertex configuration at vertex v.
// Returns ErrVertexIndex if v is out of range.
// Complexity: O(V + Σ face sizes); prefer VertexFaces + ConfigAt in loops.
func (t *Tiling) VertexConfig(v int) (string, error) {
	if v < 0 || v >= len(t.Vertices) {
		return "", fmt.Errorf("VertexConfig(%d): %w", v, ErrVertexIndex)
	}

	return t.ConfigAt(v, t.VertexFaces()[v]), nil
}

// InteriorConfigs returns a histogram of the canonical configurations of all
// interior vertices. The keys of the result are exactly the distinct local
// vertex types present in the patch interior.
// Complexity: O(V + Σ face sizes).
func (t *Tiling) InteriorConfigs() map[string]int {
	idx := t.VertexFaces()
	out := make(map[string]int)
	for v := range t.Vertices {
		if t.AngleSumAt(idx[v]) != FullTurnDeg {
			continue
		}
		out[t.ConfigAt(v, idx[v])]++
	}

	return out
}

// BoundaryEdges returns the indices of all boundary edges (one incident face)
// in ascending order.
// Complexity: O(E).
func (t *Tiling) BoundaryEdges() []int {
	var out []int
	for ei, e := range t.Edges {
		if e.Boundary() {
			out = append(out, ei)
		}
	}

	return out
}

// canonicalConfig normalizes a face-size sequence into its canonical string.
// Cyclic sequences (interior vertices) are minimized over all rotations of
// the sequence and of its reversal; linear sequences (boundary vertices) are
// minimized over reversal only.
func canonicalConfig(sizes []int, cyclic bool) string {
	best := append([]int(nil), sizes...)
	rev := make([]int, len(sizes))
	for i, s := range sizes {
		rev[len(sizes)-1-i] = s
	}
	if cyclic {
		for r := 0; r < len(sizes); r++ {
			if c := rotated(sizes, r); lessInts(c, best) {
				best = c
			}
			if c := rotated(rev, r); lessInts(c, best) {
				best = c
			}
		}
	} else if lessInts(rev, best) {
		best = rev
	}

	parts := make([]string, len(best))
	for i, s := range best {
		parts[i] = strconv.Itoa(s)
	}

	return strings.Join(parts, ".")
}

// rotated returns s rotated left by r positions (fresh slice).
func rotated(s []int, r int) []int {
	out := make([]int, len(s))
	for i := range s {
		out[i] = s[(i+r)%len(s)]
	}

	return out
}

// lessInts compares two equal-length int slices lexicographically.
func lessInts(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}
