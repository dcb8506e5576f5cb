package pathing

import "errors"

var (
	// ErrPathTooLong occurs when a path (or the result of joining two paths)
	// does not fit into [MaxLength].
	ErrPathTooLong = errors.New("path too long")

	// ErrEmptyPath occurs when an empty path or name is given where a
	// non-empty one is required.
	ErrEmptyPath = errors.New("path is empty")

	// ErrPathTraversal occurs when a name contains a ".." component and would
	// be able to escape the directory it is joined to.
	ErrPathTraversal = errors.New("path traversal not allowed")

	// ErrInvalidName occurs when a name contains a NUL byte.
	ErrInvalidName = errors.New("name contains invalid characters")
)
