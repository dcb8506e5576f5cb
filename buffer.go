package layerfs

import (
	"fmt"
)

// Buffer holds the content returned by [Handler.Read]. It belongs to the
// caller until it is given back with [Handler.Free].
type Buffer struct {
	data  []byte
	owner *Handler
	freed bool
}

// Bytes returns the content of the [Buffer]. It returns nil once the Buffer
// has been released.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Size returns the number of bytes held by the [Buffer].
func (b *Buffer) Size() int {
	return len(b.data)
}

// Free releases a [Buffer] returned by [Handler.Read] of the same Handler.
// It may be called after [Handler.Shutdown].
func (h *Handler) Free(b *Buffer) error {
	if b == nil {
		return fmt.Errorf("(layerfs-free) %w: nil buffer", ErrInvalidBuffer)
	}

	if b.owner != h {
		return fmt.Errorf("(layerfs-free) %w: not owned by this handler", ErrInvalidBuffer)
	}

	if b.freed {
		return fmt.Errorf("(layerfs-free) %w: already released", ErrInvalidBuffer)
	}

	b.data = nil
	b.freed = true

	return nil
}
