// SPDX-License-Identifier: MIT
// Package: tessella/uniform
//
// variants.go — the fixed registry binding each known tiling signature to its
// classification predicate. These definitions are the data that drives every
// generator in uniform.go.
//
// The modular rules below encode known periodic structures determined by
// prior geometric derivation; each one must keep exactly the stated comparison
// semantics, since any deviation changes the produced tiling's uniformity
// class.

package uniform

import "fmt"

// Canonical vertex-configuration strings, as produced by
// core.Tiling.VertexConfig at interior vertices.
const (
	Config36   = "3.3.3.3.3.3" // 3⁶ — six triangles
	Config346  = "3.3.3.3.6"   // 3⁴.6 — four triangles, one hexagon
	Config3366 = "3.3.6.6"     // 3².6² — two triangles, two hexagons
	Config666  = "6.6.6"       // 6³ — three hexagons
)

// Registry names, one per known uniform tiling.
const (
	NameTwoUniform             = "twoUniform"
	NameTwoUniform2            = "twoUniform2"
	NameThreeUniformOneOneOne  = "threeUniformOneOneOne"
	NameThreeUniformOneOneOne2 = "threeUniformOneOneOne2"
	NameThreeUniformOneOneOne3 = "threeUniformOneOneOne3"
	NameThreeUniformTwoOne     = "threeUniformTwoOne"
	NameSevenUniformFourTwoOne = "sevenUniformFourTwoOne"
)

// Variant is an immutable named binding of a human-readable tiling signature
// to its classification predicate. Created once at definition time; never
// mutated.
//
//   - Signature uses vertex-configuration notation, e.g. "[(3⁶);(3².6²)]".
//   - Uniformity is the tiling's uniformity order t (vertex orbit count) and
//     EdgeTypes its edge-type count e (edge orbit count). Both are orbit
//     counts under the tiling's symmetry group — fixed catalogued facts, not
//     derivable from the local configuration multiset alone. EdgeTypes 0
//     means "not catalogued".
//   - Configs lists the canonical interior vertex configurations the tiling
//     exhibits (a subset check for every generated patch).
type Variant struct {
	Name       string
	Signature  string
	Uniformity int
	EdgeTypes  int
	Configs    []string
	Classify   Predicate
}

// variantTable is the registry, in stable documentation order.
var variantTable = []Variant{
	{
		Name:       NameTwoUniform,
		Signature:  "[(3⁶);(3².6²)]",
		Uniformity: 2,
		EdgeTypes:  3,
		Configs:    []string{Config36, Config3366},
		Classify:   func(i, j int) bool { return i%3 == j%3 },
	},
	{
		Name:       NameTwoUniform2,
		Signature:  "[(3⁶);(3⁴.6)]",
		Uniformity: 3,
		EdgeTypes:  3,
		Configs:    []string{Config36, Config346},
		Classify:   func(i, j int) bool { return i%3 != j%3 },
	},
	{
		Name:       NameThreeUniformOneOneOne,
		Signature:  "[(3⁶);(3².6²);(6³)]",
		Uniformity: 2,
		EdgeTypes:  3,
		Configs:    []string{Config36, Config3366, Config666},
		Classify:   And(ColMod(2, 0), RowMod(2, 0)),
	},
	{
		Name:       NameThreeUniformOneOneOne2,
		Signature:  "[(3⁶);(3⁴.6);(3².6²)]",
		Uniformity: 5,
		EdgeTypes:  8,
		Configs:    []string{Config36, Config346, Config3366},
		Classify:   func(i, j int) bool { return (i+2*j)%4 < 2 },
	},
	{
		Name:       NameThreeUniformOneOneOne3,
		Signature:  "[(3⁶);(3⁴.6);(3².6²)]",
		Uniformity: 3,
		EdgeTypes:  5,
		Configs:    []string{Config36, Config346, Config3366},
		Classify:   RowMod(2, 0),
	},
	{
		Name:       NameThreeUniformTwoOne,
		Signature:  "[2×(3⁶);(3⁴.6)]",
		Uniformity: 3,
		EdgeTypes:  4,
		Configs:    []string{Config36, Config346},
		Classify:   Or(ColMod(2, 0), RowMod(2, 0)),
	},
	{
		Name:       NameSevenUniformFourTwoOne,
		Signature:  "[(3⁶);2×(3².6²);4×(6³)]",
		Uniformity: 7,
		EdgeTypes:  0, // edge-orbit count not catalogued for this tiling
		Configs:    []string{Config36, Config3366, Config666},
		Classify:   func(i, j int) bool { return i%10 == (j*8)%10 },
	},
}

// Variants returns the registry in stable order. The returned slice is a
// copy; mutating it does not affect the registry.
// Complexity: O(len(table)).
func Variants() []Variant {
	out := make([]Variant, len(variantTable))
	copy(out, variantTable)

	return out
}

// Get looks up a variant by registry name.
// Returns ErrUnknownVariant (wrapped with the requested name) on a miss.
// Complexity: O(len(table)).
func Get(name string) (Variant, error) {
	for _, v := range variantTable {
		if v.Name == name {
			return v, nil
		}
	}

	return Variant{}, fmt.Errorf("Get(%q): %w", name, ErrUnknownVariant)
}
