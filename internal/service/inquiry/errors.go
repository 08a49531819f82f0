package inquiry

import "errors"

// ErrPersist wraps any storage engine failure on insert.
var ErrPersist = errors.New("failed to save inquiry")
