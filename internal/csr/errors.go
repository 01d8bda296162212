package csr

import "errors"

// ErrOutOfRange is returned by BuildCSR when an entry references a row or
// column outside the declared matrix dimensions.
var ErrOutOfRange = errors.New("csr: index out of range")
