// SPDX-License-Identifier: MIT
// Package: tessella/uniform
//
// predicate.go — classification predicates and their combinators.
//
// Contract:
//   - A Predicate must be pure, total and side-effect free for every cell
//     0 ≤ i < width, 0 ≤ j < height; evaluating it never mutates state.
//   - Combinator constructors validate their arguments eagerly and panic on
//     programmer error (nil predicate, non-positive modulus, residue out of
//     range); the returned predicates themselves never panic.
//
// Complexity: all returned predicates are O(len(ps)) or O(1) per evaluation.

package uniform

// Predicate classifies one lattice cell: true selects the six-triangle
// rosette motif, false the whole-hexagon motif.
type Predicate func(i, j int) bool

// And returns a predicate that is true where every given predicate is true.
// Panics if no predicates are given or any is nil.
func And(ps ...Predicate) Predicate {
	mustAll("And", ps)

	return func(i, j int) bool {
		for _, p := range ps {
			if !p(i, j) {
				return false
			}
		}

		return true
	}
}

// Or returns a predicate that is true where any given predicate is true.
// Panics if no predicates are given or any is nil.
func Or(ps ...Predicate) Predicate {
	mustAll("Or", ps)

	return func(i, j int) bool {
		for _, p := range ps {
			if p(i, j) {
				return true
			}
		}

		return false
	}
}

// Not returns the negation of p. Panics if p is nil.
func Not(p Predicate) Predicate {
	if p == nil {
		panic("uniform: Not: nil predicate")
	}

	return func(i, j int) bool { return !p(i, j) }
}

// ColMod returns a predicate true where i mod m == r.
// Panics unless m ≥ 1 and 0 ≤ r < m.
func ColMod(m, r int) Predicate {
	mustMod("ColMod", m, r)

	return func(i, _ int) bool { return i%m == r }
}

// RowMod returns a predicate true where j mod m == r.
// Panics unless m ≥ 1 and 0 ≤ r < m.
func RowMod(m, r int) Predicate {
	mustMod("RowMod", m, r)

	return func(_, j int) bool { return j%m == r }
}

// mustAll rejects empty or nil-containing predicate lists (programmer error).
func mustAll(ctor string, ps []Predicate) {
	if len(ps) == 0 {
		panic("uniform: " + ctor + ": no predicates")
	}
	for _, p := range ps {
		if p == nil {
			panic("uniform: " + ctor + ": nil predicate")
		}
	}
}

// mustMod rejects meaningless modulus parameters (programmer error).
func mustMod(ctor string, m, r int) {
	if m < 1 || r < 0 || r >= m {
		panic("uniform: " + ctor + ": residue must satisfy 0 ≤ r < m, m ≥ 1")
	}
}
