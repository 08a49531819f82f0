package notify

import "errors"

// ErrDeliver wraps any mail transport failure. The failure is not
// classified further; delivery is attempted exactly once.
var ErrDeliver = errors.New("failed to deliver notification")
