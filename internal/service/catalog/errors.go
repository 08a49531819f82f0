package catalog

import "errors"

var (
	// ErrNotFound means the requested name does not resolve to a file
	// inside the assets directory.
	ErrNotFound = errors.New("file not found")

	// ErrEnumerate wraps a directory listing failure.
	ErrEnumerate = errors.New("failed to list assets")
)
