package layerfs

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/desertwitch/layerfs/internal/pathing"
	"golang.org/x/sys/unix"
)

// resolve searches the mounts from the most recently inserted to the first
// and returns the first joined path that exists, together with its lstat
// result. Mounts whose joined path would be too long are skipped.
func (h *Handler) resolve(name string) (pathing.Path, *unix.Stat_t, error) {
	if err := pathing.ValidateName(name); err != nil {
		return pathing.Path{}, nil, fmt.Errorf("(layerfs-resolve) %w", err)
	}

	candidates := h.mounts.Precedence()
	tooLong := 0

	for _, mount := range candidates {
		path, err := pathing.Join(mount, name)
		if err != nil {
			slog.Debug("Skipped mount: joined path too long",
				"mount", mount.String(),
				"name", name,
			)
			tooLong++

			continue
		}

		var stat unix.Stat_t
		if err := h.unixHandler.Lstat(path.String(), &stat); err != nil {
			if !errors.Is(err, unix.ENOENT) {
				slog.Debug("Skipped mount: failed to lstat candidate",
					"path", path.String(),
					"err", err,
				)
			}

			continue
		}

		return path, &stat, nil
	}

	if tooLong > 0 && tooLong == len(candidates) {
		return pathing.Path{}, nil, fmt.Errorf("(layerfs-resolve) %w: %w: %s", ErrNotFound, ErrPathTooLong, name)
	}

	return pathing.Path{}, nil, fmt.Errorf("(layerfs-resolve) %w: %s", ErrNotFound, name)
}

// writePath returns name joined onto the write directory. It never consults
// the mounts.
func (h *Handler) writePath(name string) (pathing.Path, error) {
	if h.writeDir.IsZero() {
		return pathing.Path{}, ErrNoWriteDir
	}

	if err := pathing.ValidateName(name); err != nil {
		return pathing.Path{}, err
	}

	path, err := pathing.Join(h.writeDir, name)
	if err != nil {
		return pathing.Path{}, err
	}

	return path, nil
}
