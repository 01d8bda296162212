package smvp

import "errors"

// ErrPointIndexOutOfRange is returned when a transposed matrix references
// a point index outside the supplied points slice.
var ErrPointIndexOutOfRange = errors.New("smvp: point index out of range")
