package reduction

import "errors"

// ErrUnknownStrategy is returned by Reduce for an unrecognized Strategy.
var ErrUnknownStrategy = errors.New("reduction: unknown strategy")
