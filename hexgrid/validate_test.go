package hexgrid_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/tessella/core"
	"github.com/katalvlaran/tessella/hexgrid"
)

// The tilings below are assembled by hand to hit violations Build can never
// produce itself; Validate is the test-only re-export of the internal checker.

// TestValidate_OverSharedEdge: an edge bounded by three faces breaks planarity.
func TestValidate_OverSharedEdge(t *testing.T) {
	tl := &core.Tiling{
		Width:  1,
		Height: 1,
		Vertices: []core.Vertex{
			{A: 0, B: 0}, {A: 2, B: 0}, {A: 1, B: 2}, {A: 1, B: -2}, {A: 3, B: 2},
		},
		Faces: []core.Face{
			{Verts: []int{0, 1, 2}},
			{Verts: []int{0, 1, 3}},
			{Verts: []int{0, 1, 4}},
		},
		Edges: []core.Edge{
			{U: 0, V: 1, Faces: []int{0, 1, 2}},
		},
	}

	if err := hexgrid.Validate(tl); !errors.Is(err, hexgrid.ErrInconsistent) {
		t.Errorf("Validate = %v; want ErrInconsistent for a 3-face edge", err)
	}
}

// TestValidate_AngleOverflow: four hexagons meeting at one vertex sum to 480°.
func TestValidate_AngleOverflow(t *testing.T) {
	hex := []int{0, 1, 2, 3, 4, 5}
	tl := &core.Tiling{
		Width:  1,
		Height: 1,
		Vertices: []core.Vertex{
			{A: 0, B: 0}, {A: 1, B: -1}, {A: 2, B: 0}, {A: 2, B: 2}, {A: 1, B: 3}, {A: 0, B: 2},
		},
		Faces: []core.Face{
			{Verts: hex}, {Verts: hex}, {Verts: hex}, {Verts: hex},
		},
	}

	if err := hexgrid.Validate(tl); !errors.Is(err, hexgrid.ErrInconsistent) {
		t.Errorf("Validate = %v; want ErrInconsistent for a 480° vertex", err)
	}
}

// TestValidate_InvalidConfiguration: two triangles and two hexagons can meet
// at 360° in the alternating order 3.6.3.6, which no motif layout produces.
// The patch places a triangle north and south of the origin and a hexagon
// east and west of it.
func TestValidate_InvalidConfiguration(t *testing.T) {
	tl := &core.Tiling{
		Width:  3,
		Height: 3,
		Vertices: []core.Vertex{
			{A: 0, B: 0},                   // 0: shared center
			{A: -1, B: 3}, {A: 1, B: 3},    // 1,2: north triangle
			{A: -1, B: -3}, {A: 1, B: -3},  // 3,4: south triangle
			{A: 1, B: -1}, {A: 2, B: 0},    // 5,6: east hexagon rim
			{A: 2, B: 2}, {A: 0, B: 2},     // 7,8
			{A: 0, B: -2}, {A: -1, B: 1},   // 9,10: west hexagon rim
			{A: -2, B: 0}, {A: -2, B: -2},  // 11,12
		},
		Faces: []core.Face{
			{Verts: []int{0, 1, 2}},
			{Verts: []int{0, 4, 3}},
			{Verts: []int{5, 6, 7, 2, 8, 0}},
			{Verts: []int{3, 9, 0, 10, 11, 12}},
		},
	}

	if err := hexgrid.Validate(tl); !errors.Is(err, hexgrid.ErrInconsistent) {
		t.Errorf("Validate = %v; want ErrInconsistent for a 3.6.3.6 vertex", err)
	}
}

// TestValidate_OpenBoundary: two triangles pinched at one vertex (a bowtie)
// give that vertex four boundary edges, so the outline is not a closed loop.
func TestValidate_OpenBoundary(t *testing.T) {
	tl := &core.Tiling{
		Width:  2,
		Height: 1,
		Vertices: []core.Vertex{
			{A: 0, B: 0},
			{A: -2, B: -1}, {A: -2, B: 1},
			{A: 2, B: -1}, {A: 2, B: 1},
		},
		Faces: []core.Face{
			{Verts: []int{0, 1, 2}},
			{Verts: []int{0, 3, 4}},
		},
		Edges: []core.Edge{
			{U: 0, V: 1, Faces: []int{0}},
			{U: 1, V: 2, Faces: []int{0}},
			{U: 0, V: 2, Faces: []int{0}},
			{U: 0, V: 3, Faces: []int{1}},
			{U: 3, V: 4, Faces: []int{1}},
			{U: 0, V: 4, Faces: []int{1}},
		},
	}

	if err := hexgrid.Validate(tl); !errors.Is(err, hexgrid.ErrOpenBoundary) {
		t.Errorf("Validate = %v; want ErrOpenBoundary for a bowtie", err)
	}
}

// TestValidate_AcceptsBuiltTilings: everything Build emits must pass cleanly.
func TestValidate_AcceptsBuiltTilings(t *testing.T) {
	for _, motif := range []struct {
		name     string
		classify func(int, int) bool
	}{
		{"AllHexagons", allHex},
		{"AllRosettes", allRosette},
		{"Checkerboard", func(i, j int) bool { return (i+j)%2 == 0 }},
	} {
		t.Run(motif.name, func(t *testing.T) {
			tl, err := hexgrid.Build(5, 4, motif.classify)
			if err != nil {
				t.Fatalf("Build error: %v", err)
			}
			if err := hexgrid.Validate(tl); err != nil {
				t.Errorf("Validate rejected a built tiling: %v", err)
			}
		})
	}
}
