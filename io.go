package layerfs

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

const (
	filePerm = 0o644
	dirPerm  = 0o700
)

// Read resolves name across the mounts and returns the whole content of the
// first match. The returned [Buffer] is owned by the caller until it is
// released with [Handler.Free].
func (h *Handler) Read(name string) (*Buffer, error) {
	if !h.valid {
		return nil, fmt.Errorf("(layerfs-read) %w", ErrInvalidState)
	}

	path, _, err := h.resolve(name)
	if err != nil {
		return nil, fmt.Errorf("(layerfs-read) %w", err)
	}

	data, err := h.readFile(path.String())
	if err != nil {
		return nil, fmt.Errorf("(layerfs-read) %w", err)
	}

	return &Buffer{data: data, owner: h}, nil
}

func (h *Handler) readFile(path string) ([]byte, error) {
	f, err := h.osHandler.Open(path)
	if err != nil {
		return nil, newIOError("open", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("Failed to close file after reading", "path", path, "err", err)
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return nil, newIOError("stat", path, err)
	}

	if info.IsDir() {
		return nil, newIOError("read", path, ErrIsDirectory)
	}

	data := make([]byte, info.Size())
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, newIOError("read", path, err)
	}

	return data, nil
}

// Write creates or truncates name in the write directory and writes data to
// it. Mounts are never consulted.
func (h *Handler) Write(name string, data []byte) error {
	if !h.valid {
		return fmt.Errorf("(layerfs-write) %w", ErrInvalidState)
	}

	if err := h.writeFile(name, data, os.O_CREATE|os.O_TRUNC|os.O_WRONLY); err != nil {
		return fmt.Errorf("(layerfs-write) %w", err)
	}

	return nil
}

// Append adds data to the end of name in the write directory, creating it if
// it does not exist. Mounts are never consulted.
func (h *Handler) Append(name string, data []byte) error {
	if !h.valid {
		return fmt.Errorf("(layerfs-append) %w", ErrInvalidState)
	}

	if err := h.writeFile(name, data, os.O_CREATE|os.O_APPEND|os.O_WRONLY); err != nil {
		return fmt.Errorf("(layerfs-append) %w", err)
	}

	return nil
}

func (h *Handler) writeFile(name string, data []byte, flag int) (retErr error) {
	path, err := h.writePath(name)
	if err != nil {
		return err
	}

	f, err := h.osHandler.OpenFile(path.String(), flag, filePerm)
	if err != nil {
		return newIOError("open", path.String(), err)
	}
	defer func() {
		if err := f.Close(); err != nil && retErr == nil {
			retErr = newIOError("close", path.String(), err)
		}
	}()

	n, err := f.Write(data)
	if err != nil {
		return newIOError("write", path.String(), err)
	}

	if n != len(data) {
		return newIOError("write", path.String(),
			fmt.Errorf("%w: %d of %d bytes", ErrShortWrite, n, len(data)))
	}

	return nil
}

// Delete removes the file or empty directory name from the write directory.
// Files that exist only on a mount are not affected.
func (h *Handler) Delete(name string) error {
	if !h.valid {
		return fmt.Errorf("(layerfs-delete) %w", ErrInvalidState)
	}

	path, err := h.writePath(name)
	if err != nil {
		return fmt.Errorf("(layerfs-delete) %w", err)
	}

	if err := h.osHandler.Remove(path.String()); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("(layerfs-delete) %w: %s", ErrNotFound, name)
		}

		return fmt.Errorf("(layerfs-delete) %w", newIOError("remove", path.String(), err))
	}

	return nil
}

// Mkdir creates the directory path beneath the write directory, together
// with every missing component of the joined path, including the write
// directory itself and its parents. Components that already exist are left
// alone.
func (h *Handler) Mkdir(path string) error {
	if !h.valid {
		return fmt.Errorf("(layerfs-mkdir) %w", ErrInvalidState)
	}

	target, err := h.writePath(path)
	if err != nil {
		return fmt.Errorf("(layerfs-mkdir) %w", err)
	}

	for _, dir := range dirChain(target.String()) {
		if err := h.unixHandler.Mkdir(dir, dirPerm); err != nil {
			if errors.Is(err, unix.EEXIST) {
				continue
			}

			return fmt.Errorf("(layerfs-mkdir) %w", newIOError("mkdir", dir, err))
		}
	}

	return nil
}

// dirChain returns every prefix of path ending at a component, shortest
// first. Empty and "." components are dropped.
func dirChain(path string) []string {
	var prefix string
	if strings.HasPrefix(path, "/") {
		prefix = "/"
	}

	var chain []string
	for _, part := range strings.Split(path, "/") {
		if part == "" || part == "." {
			continue
		}

		if prefix == "" || prefix == "/" {
			prefix += part
		} else {
			prefix += "/" + part
		}

		chain = append(chain, prefix)
	}

	return chain
}
