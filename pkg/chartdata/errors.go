package chartdata

import "errors"

// ErrLengthMismatch is returned by the series constructors when parallel
// value slices have different lengths.
var ErrLengthMismatch = errors.New("chartdata: parallel slices must have the same length")
