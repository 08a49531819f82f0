package quote

import "errors"

// ErrMissingFields rejects a submission before any side effect.
var ErrMissingFields = errors.New("all fields are required")
