package pathing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Success(t *testing.T) {
	t.Parallel()

	p, err := New("/mnt/content")

	require.NoError(t, err)
	assert.Equal(t, "/mnt/content", p.String())
	assert.Equal(t, 12, p.Len())
	assert.False(t, p.IsZero())
}

func TestNew_Fail_Empty(t *testing.T) {
	t.Parallel()

	_, err := New("")

	require.ErrorIs(t, err, ErrEmptyPath)
}

func TestNew_Bounds(t *testing.T) {
	t.Parallel()

	_, err := New(strings.Repeat("a", MaxLength-1))
	require.NoError(t, err, "a path one below the bound should be accepted")

	_, err = New(strings.Repeat("a", MaxLength))
	require.ErrorIs(t, err, ErrPathTooLong, "a path at the bound should be rejected")

	_, err = New(strings.Repeat("a", MaxLength+10))
	require.ErrorIs(t, err, ErrPathTooLong)
}

func TestJoin_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		dir  string
		elem string
		want string
	}{
		{"plain", "/mnt/base", "file.txt", "/mnt/base/file.txt"},
		{"trailing separator", "/mnt/base/", "file.txt", "/mnt/base/file.txt"},
		{"leading separator", "/mnt/base", "/file.txt", "/mnt/base/file.txt"},
		{"both separators", "/mnt/base/", "//file.txt", "/mnt/base/file.txt"},
		{"relative dir", "base", "sub/file.txt", "base/sub/file.txt"},
		{"root dir", "/", "file.txt", "/file.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir, err := New(tt.dir)
			require.NoError(t, err)

			joined, err := Join(dir, tt.elem)

			require.NoError(t, err)
			assert.Equal(t, tt.want, joined.String())
		})
	}
}

func TestJoin_Fail_TooLong(t *testing.T) {
	t.Parallel()

	dir, err := New(strings.Repeat("d", MaxLength-2))
	require.NoError(t, err)

	_, err = Join(dir, "x.txt")

	require.ErrorIs(t, err, ErrPathTooLong)
}

func TestJoin_Bounds(t *testing.T) {
	t.Parallel()

	dir, err := New(strings.Repeat("d", 100))
	require.NoError(t, err)

	joined, err := Join(dir, strings.Repeat("n", MaxLength-102))
	require.NoError(t, err)
	assert.Equal(t, MaxLength-1, joined.Len())

	_, err = Join(dir, strings.Repeat("n", MaxLength-101))
	require.ErrorIs(t, err, ErrPathTooLong)
}

func TestJoin_Bounds_TrailingSeparator(t *testing.T) {
	t.Parallel()

	dir, err := New(strings.Repeat("d", 99) + "/")
	require.NoError(t, err)

	joined, err := Join(dir, strings.Repeat("n", MaxLength-101))
	require.NoError(t, err)
	assert.Equal(t, MaxLength-1, joined.Len())
}

func TestJoin_Fail_ZeroDir(t *testing.T) {
	t.Parallel()

	_, err := Join(Path{}, "file.txt")

	require.ErrorIs(t, err, ErrEmptyPath)
}

func TestValidateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"simple", "file.txt", nil},
		{"nested", "saves/slot1/data.bin", nil},
		{"leading separator", "/file.txt", nil},
		{"current dir", "./file.txt", nil},
		{"dots inside name", "file..txt", nil},
		{"hidden file", "..hidden", nil},
		{"empty", "", ErrEmptyPath},
		{"only separators", "///", ErrEmptyPath},
		{"parent", "..", ErrPathTraversal},
		{"parent prefix", "../etc/passwd", ErrPathTraversal},
		{"parent in middle", "saves/../../etc/passwd", ErrPathTraversal},
		{"parent at end", "saves/..", ErrPathTraversal},
		{"nul byte", "file\x00.txt", ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateName(tt.input)
			if tt.wantErr == nil {
				require.NoError(t, err)

				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
