package decompose

import "errors"

// ErrInvalidScalar is returned for scalars that cannot be decomposed under
// the given Config.
var ErrInvalidScalar = errors.New("decompose: invalid scalar")
