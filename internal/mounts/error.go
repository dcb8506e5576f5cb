package mounts

import "errors"

var (
	// ErrCapacityExceeded occurs when a mount is inserted into a full [Table].
	ErrCapacityExceeded = errors.New("mount capacity exceeded")

	// ErrDuplicate occurs when a mount is inserted that is already present.
	ErrDuplicate = errors.New("mount already present")

	// ErrNotMounted occurs when a mount is removed that is not present.
	ErrNotMounted = errors.New("mount not present")
)
