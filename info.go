package layerfs

import (
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/desertwitch/layerfs/internal/pathing"
	"github.com/zeebo/blake3"
	"golang.org/x/sys/unix"
)

// FileType is the kind of a filesystem entry.
type FileType int

const (
	// None is any entry that is not a regular file, directory or symlink.
	None FileType = iota
	Regular
	Directory
	Symlink
)

// String returns the lowercase name of the [FileType].
func (t FileType) String() string {
	switch t {
	case Regular:
		return "regular"
	case Directory:
		return "directory"
	case Symlink:
		return "symlink"
	case None:
		return "none"
	default:
		return fmt.Sprintf("FileType(%d)", int(t))
	}
}

// Info is the metadata of a resolved entry. ModTime is in seconds since the
// Unix epoch.
type Info struct {
	Type    FileType
	Size    uint64
	ModTime int64
}

// ModifiedAt returns ModTime as a [time.Time].
func (i Info) ModifiedAt() time.Time {
	return time.Unix(i.ModTime, 0)
}

func infoFromStat(stat *unix.Stat_t) Info {
	info := Info{
		Size:    uint64(stat.Size), //nolint:gosec
		ModTime: stat.Mtim.Sec,
	}

	switch stat.Mode & unix.S_IFMT {
	case unix.S_IFREG:
		info.Type = Regular
	case unix.S_IFDIR:
		info.Type = Directory
	case unix.S_IFLNK:
		info.Type = Symlink
	default:
		info.Type = None
	}

	return info
}

// Exists reports whether name is present on any mount. Absence is not an
// error, unless name was too long to be joined onto any mount.
func (h *Handler) Exists(name string) (bool, error) {
	if !h.valid {
		return false, fmt.Errorf("(layerfs-exists) %w", ErrInvalidState)
	}

	if _, _, err := h.resolve(name); err != nil {
		if errors.Is(err, ErrNotFound) && !errors.Is(err, ErrPathTooLong) {
			return false, nil
		}

		return false, fmt.Errorf("(layerfs-exists) %w", err)
	}

	return true, nil
}

// GetInfo returns the metadata of the first match of name across the mounts.
// Symlinks are reported as such and not followed.
func (h *Handler) GetInfo(name string) (Info, error) {
	if !h.valid {
		return Info{}, fmt.Errorf("(layerfs-info) %w", ErrInvalidState)
	}

	_, stat, err := h.resolve(name)
	if err != nil {
		return Info{}, fmt.Errorf("(layerfs-info) %w", err)
	}

	return infoFromStat(stat), nil
}

// Cwd returns the working directory of the process. The first successful
// lookup is kept for the lifetime of the [Handler]. Cwd may be called before
// [Handler.Setup], e.g. to use the working directory as a mount.
func (h *Handler) Cwd() (string, error) {
	if !h.cwd.IsZero() {
		return h.cwd.String(), nil
	}

	wd, err := h.osHandler.Getwd()
	if err != nil {
		return "", fmt.Errorf("(layerfs-cwd) %w", newIOError("getwd", "", err))
	}

	p, err := pathing.New(wd)
	if err != nil {
		return "", fmt.Errorf("(layerfs-cwd) %w", err)
	}
	h.cwd = p

	return h.cwd.String(), nil
}

// ChecksumAlgorithm selects the hash used by [Handler.ChecksumWith].
type ChecksumAlgorithm string

const (
	ChecksumBLAKE3 ChecksumAlgorithm = "blake3"
	ChecksumXXHash ChecksumAlgorithm = "xxhash"
)

func newHasher(algorithm ChecksumAlgorithm) (hash.Hash, error) {
	switch algorithm {
	case ChecksumBLAKE3:
		return blake3.New(), nil
	case ChecksumXXHash:
		return xxhash.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedChecksum, algorithm)
	}
}

// Checksum returns the hex encoded BLAKE3 digest of the first match of name
// across the mounts.
func (h *Handler) Checksum(name string) (string, error) {
	return h.ChecksumWith(name, ChecksumBLAKE3)
}

// ChecksumWith returns the hex encoded digest of the first match of name
// across the mounts, using the given algorithm.
func (h *Handler) ChecksumWith(name string, algorithm ChecksumAlgorithm) (string, error) {
	if !h.valid {
		return "", fmt.Errorf("(layerfs-sum) %w", ErrInvalidState)
	}

	hasher, err := newHasher(algorithm)
	if err != nil {
		return "", fmt.Errorf("(layerfs-sum) %w", err)
	}

	path, _, err := h.resolve(name)
	if err != nil {
		return "", fmt.Errorf("(layerfs-sum) %w", err)
	}

	f, err := h.osHandler.Open(path.String())
	if err != nil {
		return "", fmt.Errorf("(layerfs-sum) %w", newIOError("open", path.String(), err))
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("Failed to close file after hashing", "path", path.String(), "err", err)
		}
	}()

	if _, err := io.Copy(hasher, f); err != nil {
		return "", fmt.Errorf("(layerfs-sum) %w", newIOError("read", path.String(), err))
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
