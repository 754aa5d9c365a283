// errors.go — sentinel errors.

package uniform

import "errors"

// ErrUnknownVariant indicates a registry lookup for a name that is not in
// the variant table. Generation failures are NOT of this kind: collaborator
// errors pass through from hexgrid unchanged.
var ErrUnknownVariant = errors.New("uniform: unknown variant")
