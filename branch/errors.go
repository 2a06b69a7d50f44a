package branch

import "errors"

// ErrIndexOutOfRange indicates a position or range outside [0, Len()).
var ErrIndexOutOfRange = errors.New("branch: index out of range")
