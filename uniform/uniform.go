// SPDX-License-Identifier: MIT
// Package: tessella/uniform
//
// uniform.go — thin public generators, one per known uniform tiling.
//
// Design contract (strict):
//   - Each generator is a pure mapping (width, height) → (*core.Tiling, error)
//     that supplies its fixed predicate to hexgrid.Build and returns the
//     result UNCHANGED. No wrapping, no rewording, no defaults, no partial
//     tilings: the collaborator's failure text is part of this package's
//     contract with its callers.
//   - No retries: a failure for given (width, height) is deterministic and
//     will not succeed on an identical retry; retrying belongs to callers.
//   - Stateless and safe for unlimited concurrent use.

package uniform

import (
	"github.com/katalvlaran/tessella/core"
	"github.com/katalvlaran/tessella/hexgrid"
)

// Generate builds the named variant at the given lattice dimensions.
// Registry misses return ErrUnknownVariant; everything else passes through
// from hexgrid.Build untouched.
// Complexity: O(len(table)) lookup + O(width×height) build.
func Generate(name string, width, height int) (*core.Tiling, error) {
	v, err := Get(name)
	if err != nil {
		return nil, err
	}

	return hexgrid.Build(width, height, v.Classify)
}

// TwoUniform generates the 2-uniform tiling [(3⁶);(3².6²)] (t=2, e=3):
// rosettes where i mod 3 == j mod 3.
func TwoUniform(width, height int) (*core.Tiling, error) {
	return Generate(NameTwoUniform, width, height)
}

// TwoUniform2 generates the tiling [(3⁶);(3⁴.6)] (t=3, e=3):
// rosettes where i mod 3 != j mod 3.
func TwoUniform2(width, height int) (*core.Tiling, error) {
	return Generate(NameTwoUniform2, width, height)
}

// ThreeUniformOneOneOne generates the tiling [(3⁶);(3².6²);(6³)] (t=2, e=3):
// rosettes where both i and j are even.
func ThreeUniformOneOneOne(width, height int) (*core.Tiling, error) {
	return Generate(NameThreeUniformOneOneOne, width, height)
}

// ThreeUniformOneOneOne2 generates the tiling [(3⁶);(3⁴.6);(3².6²)]
// (t=5, e=8): rosettes where (i + 2j) mod 4 < 2.
func ThreeUniformOneOneOne2(width, height int) (*core.Tiling, error) {
	return Generate(NameThreeUniformOneOneOne2, width, height)
}

// ThreeUniformOneOneOne3 generates the tiling [(3⁶);(3⁴.6);(3².6²)]
// (t=3, e=5): rosettes on even rows.
func ThreeUniformOneOneOne3(width, height int) (*core.Tiling, error) {
	return Generate(NameThreeUniformOneOneOne3, width, height)
}

// ThreeUniformTwoOne generates the tiling [2×(3⁶);(3⁴.6)] (t=3, e=4):
// rosettes where i or j is even.
func ThreeUniformTwoOne(width, height int) (*core.Tiling, error) {
	return Generate(NameThreeUniformTwoOne, width, height)
}

// SevenUniformFourTwoOne generates the 7-uniform tiling
// [(3⁶);2×(3².6²);4×(6³)]: rosettes where i mod 10 == (j·8) mod 10.
func SevenUniformFourTwoOne(width, height int) (*core.Tiling, error) {
	return Generate(NameSevenUniformFourTwoOne, width, height)
}
