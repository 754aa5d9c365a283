// errors.go — sentinel errors. Callers MUST use errors.Is to branch.

package core

import "errors"

var (
	// ErrVertexIndex indicates a vertex index outside [0, len(Vertices)).
	ErrVertexIndex = errors.New("core: vertex index out of range")
	// ErrFaceIndex indicates a face index outside [0, len(Faces)).
	ErrFaceIndex = errors.New("core: face index out of range")
)
