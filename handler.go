package layerfs

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/desertwitch/layerfs/internal/mounts"
	"github.com/desertwitch/layerfs/internal/pathing"
	"golang.org/x/sys/unix"
)

const (
	// MaxPath is the exclusive upper bound for the length of every path a
	// [Handler] stores or constructs.
	MaxPath = pathing.MaxLength

	// MaxMounts is the maximum number of mounts a [Handler] can hold.
	MaxMounts = mounts.Capacity
)

type osProvider interface {
	Getwd() (string, error)
	Open(name string) (File, error)
	OpenFile(name string, flag int, perm os.FileMode) (File, error)
	Remove(name string) error
}

type unixProvider interface {
	Lstat(path string, stat *unix.Stat_t) error
	Mkdir(path string, mode uint32) error
}

// Descriptor describes the initial state of a [Handler]. Empty strings are
// treated as absent. BasePaths are mounted in array order, so the last
// non-empty slot has the highest read precedence.
type Descriptor struct {
	WriteDir  string
	BasePaths [MaxMounts]string
}

// Handler is a layered filesystem context. Reads are resolved across the
// mounted base paths, mutations are confined to the write directory.
//
// A Handler performs no internal locking. Concurrent use must be serialized
// by the caller, or each goroutine must use its own Handler.
type Handler struct {
	osHandler   osProvider
	unixHandler unixProvider

	writeDir pathing.Path
	mounts   mounts.Table
	cwd      pathing.Path
	valid    bool
}

// New returns a [Handler] operating on the real filesystem. It must be set up
// with [Handler.Setup] before use.
func New() *Handler {
	return NewHandler(&OS{}, &Unix{})
}

// NewHandler returns a [Handler] using the given operating system providers.
// It must be set up with [Handler.Setup] before use.
func NewHandler(osHandler osProvider, unixHandler unixProvider) *Handler {
	return &Handler{
		osHandler:   osHandler,
		unixHandler: unixHandler,
	}
}

// Setup initializes the [Handler] from desc and marks it valid. All values
// are validated before anything is changed, so a failing Setup leaves the
// Handler as it was. A Handler that is already set up must be shut down
// first.
func (h *Handler) Setup(desc Descriptor) error {
	if h.valid {
		return fmt.Errorf("(layerfs-setup) %w: already set up", ErrInvalidState)
	}

	var writeDir pathing.Path
	if desc.WriteDir != "" {
		p, err := pathing.New(desc.WriteDir)
		if err != nil {
			return fmt.Errorf("(layerfs-setup) write dir: %w", err)
		}
		writeDir = p
	}

	var table mounts.Table
	for _, base := range desc.BasePaths {
		if base == "" {
			continue
		}

		p, err := pathing.New(base)
		if err != nil {
			return fmt.Errorf("(layerfs-setup) base path: %w", err)
		}

		if err := table.Insert(p); err != nil {
			return fmt.Errorf("(layerfs-setup) %w", err)
		}
	}

	h.writeDir = writeDir
	h.mounts = table
	h.valid = true

	slog.Debug("Layered filesystem set up",
		"writeDir", h.writeDir.String(),
		"mounts", h.mounts.Paths(),
	)

	return nil
}

// Shutdown resets the [Handler] and marks it invalid. All further operations
// are rejected until the next [Handler.Setup].
func (h *Handler) Shutdown() error {
	if !h.valid {
		return fmt.Errorf("(layerfs-shutdown) %w: not set up", ErrInvalidState)
	}

	h.valid = false
	h.writeDir = pathing.Path{}
	h.mounts.Reset()

	return nil
}

// IsValid reports whether the [Handler] is between Setup and Shutdown.
func (h *Handler) IsValid() bool {
	return h.valid
}

// WriteDir returns the write directory, or an empty string if none is set.
func (h *Handler) WriteDir() (string, error) {
	if !h.valid {
		return "", fmt.Errorf("(layerfs-writedir) %w", ErrInvalidState)
	}

	return h.writeDir.String(), nil
}

// InsertMount adds path to the end of the search path, giving it the highest
// read precedence.
func (h *Handler) InsertMount(path string) error {
	if !h.valid {
		return fmt.Errorf("(layerfs-mount) %w", ErrInvalidState)
	}

	p, err := pathing.New(path)
	if err != nil {
		return fmt.Errorf("(layerfs-mount) %w", err)
	}

	if err := h.mounts.Insert(p); err != nil {
		return fmt.Errorf("(layerfs-mount) %w", err)
	}

	return nil
}

// RemoveMount removes path from the search path. The remaining mounts keep
// their relative order.
func (h *Handler) RemoveMount(path string) error {
	if !h.valid {
		return fmt.Errorf("(layerfs-unmount) %w", ErrInvalidState)
	}

	if err := h.mounts.Remove(path); err != nil {
		return fmt.Errorf("(layerfs-unmount) %w", err)
	}

	return nil
}

// Mounts returns the mounted base paths in insertion order, lowest read
// precedence first.
func (h *Handler) Mounts() ([]string, error) {
	if !h.valid {
		return nil, fmt.Errorf("(layerfs-mounts) %w", ErrInvalidState)
	}

	return h.mounts.Paths(), nil
}
