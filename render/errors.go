// errors.go — sentinel errors.

package render

import "errors"

var (
	// ErrNilTiling indicates a renderer was called with a nil tiling.
	ErrNilTiling = errors.New("render: nil tiling")
	// ErrBadColor indicates a fill/stroke color is not a valid CSS hex color.
	ErrBadColor = errors.New("render: invalid hex color")
)
