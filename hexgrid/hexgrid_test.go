package hexgrid_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/tessella/core"
	"github.com/katalvlaran/tessella/hexgrid"
)

// Motif shorthands used across the tests.
func allHex(int, int) bool     { return false }
func allRosette(int, int) bool { return true }

//----------------------------------------------------------------------------//
// Parameter validation
//----------------------------------------------------------------------------//

// TestBuild_Errors verifies that Build rejects degenerate parameters with the
// matching sentinels.
func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name     string
		w, h     int
		classify func(int, int) bool
		err      error
	}{
		{"ZeroWidth", 0, 3, allHex, hexgrid.ErrTooFewCells},
		{"ZeroHeight", 3, 0, allHex, hexgrid.ErrTooFewCells},
		{"NegativeDims", -1, -1, allHex, hexgrid.ErrTooFewCells},
		{"NilClassifier", 2, 2, nil, hexgrid.ErrNilClassifier},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := hexgrid.Build(tc.w, tc.h, tc.classify)
			if !errors.Is(err, tc.err) {
				t.Errorf("Build(%d,%d) error = %v; want %v", tc.w, tc.h, err, tc.err)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Structural counts
//----------------------------------------------------------------------------//

// TestBuild_SingleHexagon checks the minimal whole-hexagon patch:
// 6 vertices, 6 edges (all boundary), 1 face.
func TestBuild_SingleHexagon(t *testing.T) {
	tl, err := hexgrid.Build(1, 1, allHex)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if tl.VertexCount() != 6 || tl.EdgeCount() != 6 || tl.FaceCount() != 1 {
		t.Errorf("got V=%d E=%d F=%d; want 6/6/1", tl.VertexCount(), tl.EdgeCount(), tl.FaceCount())
	}
	if got := len(tl.BoundaryEdges()); got != 6 {
		t.Errorf("boundary edges = %d; want 6", got)
	}
	if tl.Faces[0].Cell != (core.Coord{I: 0, J: 0}) {
		t.Errorf("face cell = %v; want (0,0)", tl.Faces[0].Cell)
	}
}

// TestBuild_SingleRosette checks the minimal rosette patch:
// 7 vertices (6 corners + center), 12 edges (6 rim + 6 spokes), 6 triangles.
// The center is the only interior vertex and reads as 3⁶.
func TestBuild_SingleRosette(t *testing.T) {
	tl, err := hexgrid.Build(1, 1, allRosette)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if tl.VertexCount() != 7 || tl.EdgeCount() != 12 || tl.FaceCount() != 6 {
		t.Errorf("got V=%d E=%d F=%d; want 7/12/6", tl.VertexCount(), tl.EdgeCount(), tl.FaceCount())
	}
	if got := len(tl.BoundaryEdges()); got != 6 {
		t.Errorf("boundary edges = %d; want 6", got)
	}

	configs := tl.InteriorConfigs()
	if len(configs) != 1 || configs["3.3.3.3.3.3"] != 1 {
		t.Errorf("interior configs = %v; want exactly one 3⁶ center", configs)
	}
}

// TestBuild_TwoHexagons verifies exact vertex sharing between horizontal
// neighbors: two hexagons share one edge and its two endpoints.
func TestBuild_TwoHexagons(t *testing.T) {
	tl, err := hexgrid.Build(2, 1, allHex)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if tl.VertexCount() != 10 || tl.EdgeCount() != 11 || tl.FaceCount() != 2 {
		t.Errorf("got V=%d E=%d F=%d; want 10/11/2", tl.VertexCount(), tl.EdgeCount(), tl.FaceCount())
	}

	interior := 0
	for _, e := range tl.Edges {
		if !e.Boundary() {
			interior++
		}
	}
	if interior != 1 {
		t.Errorf("interior edges = %d; want exactly the shared edge", interior)
	}
}

// TestBuild_HexBlock checks a 2×2 all-hexagon block: 16 vertices, 19 edges,
// 4 faces, two interior 6³ vertices, and a 14-edge closed boundary.
func TestBuild_HexBlock(t *testing.T) {
	tl, err := hexgrid.Build(2, 2, allHex)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if tl.VertexCount() != 16 || tl.EdgeCount() != 19 || tl.FaceCount() != 4 {
		t.Errorf("got V=%d E=%d F=%d; want 16/19/4", tl.VertexCount(), tl.EdgeCount(), tl.FaceCount())
	}
	if got := len(tl.BoundaryEdges()); got != 14 {
		t.Errorf("boundary edges = %d; want 14", got)
	}

	configs := tl.InteriorConfigs()
	if configs["6.6.6"] != 2 || len(configs) != 1 {
		t.Errorf("interior configs = %v; want two 6³ vertices", configs)
	}
}

// TestBuild_MixedMotifs triangulates only cell (0,0) of a 2×2 block; the
// interior vertex shared with both hexagon neighbors must read as 3².6².
func TestBuild_MixedMotifs(t *testing.T) {
	tl, err := hexgrid.Build(2, 2, func(i, j int) bool { return i == 0 && j == 0 })
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if tl.FaceCount() != 9 { // one rosette (6 triangles) + three hexagons
		t.Errorf("faces = %d; want 9", tl.FaceCount())
	}

	configs := tl.InteriorConfigs()
	if configs["3.3.6.6"] == 0 {
		t.Errorf("interior configs = %v; want a 3².6² vertex next to the rosette", configs)
	}
}

//----------------------------------------------------------------------------//
// Determinism
//----------------------------------------------------------------------------//

// TestBuild_Deterministic verifies structural identity across repeated calls.
func TestBuild_Deterministic(t *testing.T) {
	checker := func(i, j int) bool { return (i+j)%2 == 0 }

	a, err := hexgrid.Build(4, 3, checker)
	if err != nil {
		t.Fatalf("first Build error: %v", err)
	}
	b, err := hexgrid.Build(4, 3, checker)
	if err != nil {
		t.Fatalf("second Build error: %v", err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("Build(4,3) not deterministic (-first +second):\n%s", diff)
	}
}
