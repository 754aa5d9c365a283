// Package uniform provides the named uniform-tessellation generators: a
// registry of immutable (signature, predicate) pairs and one pure function
// per known tiling, each delegating to the hexgrid lattice builder.
//
// The package offers the following key components:
//
//   - Classification predicates:
//     – Predicate:      a pure, total function (i, j) → bool over lattice
//     cell coordinates; true places a six-triangle rosette,
//     false places a whole hexagon.
//     – And/Or/Not:     plain boolean composition.
//     – ColMod/RowMod:  modular column/row selectors, the building blocks of
//     every periodic tiling in the registry.
//   - Variant registry:
//     – Variant:        an immutable named binding of a tiling signature
//     (vertex-configuration notation, uniformity order t,
//     edge-type count e) to its predicate.
//     – Variants/Get:   stable-ordered listing and lookup by name.
//   - Generators (one per known tiling):
//     – TwoUniform, TwoUniform2, ThreeUniformOneOneOne,
//     ThreeUniformOneOneOne2, ThreeUniformOneOneOne3, ThreeUniformTwoOne,
//     SevenUniformFourTwoOne — each (width, height) → (*core.Tiling, error).
//
// Guarantees:
//
//   - Purity: every call is stateless, idempotent and referentially
//     transparent; identical (width, height) always yields an identical
//     result. Concurrent calls need no synchronization.
//   - Pass-through failures: collaborator errors from hexgrid.Build are
//     returned unchanged — never suppressed, wrapped or reworded — so a
//     failure for given inputs is deterministic and branchable with
//     errors.Is against the hexgrid sentinels.
//   - Fast-fail on combinator misuse via panics in the combinator
//     constructors (nil predicate, bad modulus); generators themselves never
//     panic.
//
// The modular constants in the registry are fixed mathematical facts about
// each tiling's periodic structure, established by prior geometric
// derivation. Do not "simplify" them: any change alters which tessellation
// is produced.
package uniform
