// Package mounts implements the ordered, fixed-capacity table of read-search
// directories.
package mounts

import (
	"fmt"

	"github.com/desertwitch/layerfs/internal/pathing"
)

// Capacity is the maximum number of mounts a [Table] can hold.
const Capacity = 3

// Table is an ordered set of unique mount paths. Insertion order is kept, so
// the most recently inserted mount always has the highest index. The zero
// value is an empty table ready for use.
type Table struct {
	slots [Capacity]pathing.Path
	count int
}

// Len returns the number of occupied slots.
func (t *Table) Len() int {
	return t.count
}

// Insert appends p after all existing mounts. The table is not modified when
// it is full or already holds p.
func (t *Table) Insert(p pathing.Path) error {
	if p.IsZero() {
		return fmt.Errorf("(mounts-insert) %w", pathing.ErrEmptyPath)
	}

	if t.Len() == Capacity {
		return fmt.Errorf("(mounts-insert) %w: %d", ErrCapacityExceeded, Capacity)
	}

	if t.Contains(p.String()) {
		return fmt.Errorf("(mounts-insert) %w: %s", ErrDuplicate, p)
	}

	t.slots[t.count] = p
	t.count++

	return nil
}

// Remove deletes the mount matching path exactly. Later mounts move down one
// slot with their relative order preserved and the vacated last slot is
// cleared.
func (t *Table) Remove(path string) error {
	idx := t.indexOf(path)
	if idx < 0 {
		return fmt.Errorf("(mounts-remove) %w: %s", ErrNotMounted, path)
	}

	copy(t.slots[idx:t.count-1], t.slots[idx+1:t.count])
	t.slots[t.count-1] = pathing.Path{}
	t.count--

	return nil
}

// Contains reports whether path is mounted.
func (t *Table) Contains(path string) bool {
	return t.indexOf(path) >= 0
}

// Paths returns the mounted paths in insertion order.
func (t *Table) Paths() []string {
	paths := make([]string, t.count)
	for i := range t.count {
		paths[i] = t.slots[i].String()
	}

	return paths
}

// Precedence returns the mounts in search order, most recently inserted
// first.
func (t *Table) Precedence() []pathing.Path {
	order := make([]pathing.Path, 0, t.count)
	for i := t.count - 1; i >= 0; i-- {
		order = append(order, t.slots[i])
	}

	return order
}

// Reset clears all slots.
func (t *Table) Reset() {
	t.slots = [Capacity]pathing.Path{}
	t.count = 0
}

// indexOf searches from the highest index down and returns -1 on no match.
func (t *Table) indexOf(path string) int {
	for i := t.count - 1; i >= 0; i-- {
		if t.slots[i].String() == path {
			return i
		}
	}

	return -1
}
