// errors.go — sentinel errors.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context via %w wrapping; sentinels themselves
//     are never reworded.

package hexgrid

import "errors"

var (
	// ErrTooFewCells indicates width or height is smaller than the minimum
	// tileable lattice dimension (1).
	ErrTooFewCells = errors.New("hexgrid: width/height too small")

	// ErrNilClassifier indicates Build was called without a classifier.
	ErrNilClassifier = errors.New("hexgrid: nil classifier")

	// ErrInconsistent indicates the produced geometry violates local
	// consistency: an edge bounded by more than two faces, a vertex whose
	// interior angles exceed a full turn, or an interior vertex whose
	// configuration is not a valid triangle/hexagon vertex type.
	ErrInconsistent = errors.New("hexgrid: inconsistent tiling produced")

	// ErrOpenBoundary indicates the patch boundary does not form closed
	// loops (a boundary vertex with a number of boundary edges other than 2).
	ErrOpenBoundary = errors.New("hexgrid: tiling boundary is not closed")
)
