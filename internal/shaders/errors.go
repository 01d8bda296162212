package shaders

import "errors"

// ErrRenderFailed wraps a text/template execution error for a named kernel.
var ErrRenderFailed = errors.New("shaders: render failed")
