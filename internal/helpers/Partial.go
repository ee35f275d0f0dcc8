package helpers

import "github.com/pkg/errors"

// ErrPartial signals that a utility already reported one or more per-input
// failures on stderr and the process should exit nonzero without another
// message.
var ErrPartial = errors.New("one or more inputs failed")
