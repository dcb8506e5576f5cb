package layerfs

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/desertwitch/layerfs/internal/mounts"
	"github.com/desertwitch/layerfs/internal/pathing"
)

var (
	// ErrNotFound occurs when a name does not exist on any mount, or (for
	// deletion) does not exist in the write directory.
	ErrNotFound = errors.New("not found")

	// ErrNoWriteDir occurs when a mutating operation is attempted on a
	// [Handler] that was set up without a write directory.
	ErrNoWriteDir = errors.New("no write directory")

	// ErrInvalidState occurs when an operation is attempted outside of the
	// [Handler.Setup] and [Handler.Shutdown] bracket, or when Setup is called
	// on a [Handler] that is already set up.
	ErrInvalidState = errors.New("invalid handler state")

	// ErrIO is matched by every [IOError].
	ErrIO = errors.New("i/o error")

	// ErrShortWrite occurs when fewer bytes were written than requested.
	ErrShortWrite = errors.New("short write")

	// ErrIsDirectory occurs when a directory is read as a file.
	ErrIsDirectory = errors.New("is a directory")

	// ErrInvalidBuffer occurs when [Handler.Free] receives a [Buffer] that is
	// nil, was not returned by the same [Handler], or was already released.
	ErrInvalidBuffer = errors.New("invalid buffer")

	// ErrUnsupportedChecksum occurs when an unknown [ChecksumAlgorithm] is
	// requested.
	ErrUnsupportedChecksum = errors.New("unsupported checksum algorithm")

	// ErrMountNotFound occurs when a mount is removed that is not present.
	ErrMountNotFound = mounts.ErrNotMounted

	// ErrDuplicateMount occurs when a mount is inserted that is already
	// present.
	ErrDuplicateMount = mounts.ErrDuplicate

	// ErrMountCapacityExceeded occurs when more than [MaxMounts] mounts would
	// be present.
	ErrMountCapacityExceeded = mounts.ErrCapacityExceeded

	// ErrPathTooLong occurs when a path, or a mount or write directory joined
	// with a name, does not fit into [MaxPath].
	ErrPathTooLong = pathing.ErrPathTooLong

	// ErrEmptyPath occurs when an empty path or name is given.
	ErrEmptyPath = pathing.ErrEmptyPath

	// ErrPathTraversal occurs when a name contains a ".." component.
	ErrPathTraversal = pathing.ErrPathTraversal

	// ErrInvalidName occurs when a name contains a NUL byte.
	ErrInvalidName = pathing.ErrInvalidName
)

// IOError records a failed operating system call together with the operation
// and the path it was attempted on. It matches [ErrIO] and unwraps to the
// underlying error.
type IOError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// Is reports whether target is [ErrIO].
func (e *IOError) Is(target error) bool {
	return target == ErrIO //nolint:errorlint
}

// newIOError records err for op on path. An [fs.PathError] is replaced by
// its underlying error, as it carries the same operation and path.
func newIOError(op string, path string, err error) *IOError {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		err = pathErr.Err
	}

	return &IOError{Op: op, Path: path, Err: err}
}
