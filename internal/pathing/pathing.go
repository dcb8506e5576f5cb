// Package pathing implements bounded path values and the rules for joining a
// relative name onto a directory path.
package pathing

import (
	"fmt"
	"strings"
)

const (
	// MaxLength is the exclusive upper bound for the length of any [Path].
	MaxLength = 256

	// Separator is the only separator that is ever inserted by [Join].
	Separator = '/'
)

// Path is an immutable path value that is guaranteed to be shorter than
// [MaxLength]. The zero value is the empty (unset) path.
type Path struct {
	value string
}

// New returns a [Path] for the given string. Overlong values are rejected and
// never truncated.
func New(s string) (Path, error) {
	if s == "" {
		return Path{}, fmt.Errorf("(pathing) %w", ErrEmptyPath)
	}

	if len(s) >= MaxLength {
		return Path{}, fmt.Errorf("(pathing) %w: %d >= %d", ErrPathTooLong, len(s), MaxLength)
	}

	return Path{value: s}, nil
}

// String returns the underlying path.
func (p Path) String() string {
	return p.value
}

// Len returns the length of the path in bytes.
func (p Path) Len() int {
	return len(p.value)
}

// IsZero reports whether the path is unset.
func (p Path) IsZero() bool {
	return p.value == ""
}

// ValidateName checks a caller-supplied relative name before it is joined onto
// a mount or the write directory.
func ValidateName(name string) error {
	trimmed := strings.TrimLeft(name, string(Separator))
	if trimmed == "" {
		return fmt.Errorf("(pathing) %w", ErrEmptyPath)
	}

	if strings.IndexByte(trimmed, 0) >= 0 {
		return fmt.Errorf("(pathing) %w: %q", ErrInvalidName, name)
	}

	for _, elem := range strings.Split(trimmed, string(Separator)) {
		if elem == ".." {
			return fmt.Errorf("(pathing) %w: %s", ErrPathTraversal, name)
		}
	}

	return nil
}

// Join appends name to dir with exactly one separator between them. Leading
// separators of name are dropped, and no separator is added when dir already
// ends in one. The joined result must fit into [MaxLength].
func Join(dir Path, name string) (Path, error) {
	if dir.IsZero() {
		return Path{}, fmt.Errorf("(pathing) %w", ErrEmptyPath)
	}

	name = strings.TrimLeft(name, string(Separator))

	needsSep := dir.value[dir.Len()-1] != Separator

	size := dir.Len() + len(name)
	if needsSep {
		size++
	}

	if size >= MaxLength {
		return Path{}, fmt.Errorf("(pathing) %w: %s + %s", ErrPathTooLong, dir.value, name)
	}

	var b strings.Builder

	b.Grow(size)
	b.WriteString(dir.value)
	if needsSep {
		b.WriteByte(Separator)
	}
	b.WriteString(name)

	return Path{value: b.String()}, nil
}
