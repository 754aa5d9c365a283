// File: hexgrid/export_privates_for_test.go
//
// Test-only re-exports of package internals. Kept in a _test.go file so the
// public API surface stays unchanged.
package hexgrid

// Validate re-exports the package-private validator for white-box tests that
// construct hand-crafted (possibly malformed) tilings.
var Validate = validate
