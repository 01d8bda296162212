package curve

import "errors"

// ErrUnknownCurve is returned by Lookup for an unregistered curve name.
var ErrUnknownCurve = errors.New("curve: unknown curve")
