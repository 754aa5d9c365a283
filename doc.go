// Package tessella is your in-memory playground for generating, validating,
// and rendering uniform tessellations of the plane built from a rectangular
// hexagonal lattice.
//
// 🚀 What is tessella?
//
//	A small, deterministic library that brings together:
//		• Exact lattice geometry: integer half-unit coordinates, no float epsilons
//		• Motif selection: whole hexagons vs. six-triangle rosettes, per cell
//		• Validated tilings: closed boundary, consistent vertex configurations
//		• A registry of named uniform tilings ([(3⁶);(3².6²)] and friends)
//		• Rendering: SVG and HTML markup, plus PNG rasterization
//
// ✨ Why choose tessella?
//
//   - Beginner-friendly – one function per named tiling, clear naming
//   - Rock-solid guarantees – every returned tiling is globally consistent,
//     or you get a descriptive error instead
//   - Deterministic – identical inputs always produce identical tilings
//   - Extensible – add new uniform tilings by writing one predicate
//
// Under the hood, everything is organized under four subpackages:
//
//	core/    — Tiling, Face, Edge, Vertex value types & vertex configurations
//	hexgrid/ — rectangular hexagon-lattice builder with full validation
//	uniform/ — classification predicates and the named-variant registry
//	render/  — SVG/HTML emission and raster output
//
// Quick ASCII example:
//
//	 __    __
//	/  \__/  \__     a 2-uniform mix of hexagons and
//	\__/▲▽\__/▲▽     triangulated rosettes, signature
//	/  \▽▲/  \▽▲     [(3⁶);(3².6²)]
//	\__/  \__/
//
// Dive into DESIGN.md for the geometry model and the examples/ directory for
// runnable scenarios.
//
//	go get github.com/katalvlaran/tessella
package tessella
