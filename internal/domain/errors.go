package domain

import "errors"

// ErrMissingInput is returned when one or both input files are not given.
// It is reported before any processing starts.
var ErrMissingInput = errors.New("both input files must be provided")
