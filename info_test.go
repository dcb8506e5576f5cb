package layerfs_test

import (
	"encoding/binary"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/desertwitch/layerfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/blake3"
)

func TestExists(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	save := t.TempDir()

	writeTestFile(t, filepath.Join(base, "here.txt"), "x")
	writeTestFile(t, filepath.Join(save, "saved.txt"), "x")

	h := setupHandler(t, layerfs.Descriptor{
		WriteDir:  save,
		BasePaths: [layerfs.MaxMounts]string{base},
	})

	ok, err := h.Exists("here.txt")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Exists("missing.txt")
	require.NoError(t, err)
	assert.False(t, ok)

	// The write directory is not searched unless it is mounted.
	ok, err = h.Exists("saved.txt")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetInfo(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	modTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	writeTestFile(t, filepath.Join(base, "file.txt"), "12345")
	require.NoError(t, os.Chtimes(filepath.Join(base, "file.txt"), modTime, modTime))
	require.NoError(t, os.Mkdir(filepath.Join(base, "dir"), 0o755))
	require.NoError(t, os.Symlink("file.txt", filepath.Join(base, "link")))
	require.NoError(t, os.Symlink("nowhere", filepath.Join(base, "dangling")))

	h := setupHandler(t, layerfs.Descriptor{BasePaths: [layerfs.MaxMounts]string{base}})

	info, err := h.GetInfo("file.txt")
	require.NoError(t, err)
	assert.Equal(t, layerfs.Regular, info.Type)
	assert.Equal(t, uint64(5), info.Size)
	assert.Equal(t, modTime.Unix(), info.ModTime)
	assert.True(t, modTime.Equal(info.ModifiedAt()))

	info, err = h.GetInfo("dir")
	require.NoError(t, err)
	assert.Equal(t, layerfs.Directory, info.Type)

	info, err = h.GetInfo("link")
	require.NoError(t, err)
	assert.Equal(t, layerfs.Symlink, info.Type)

	info, err = h.GetInfo("dangling")
	require.NoError(t, err)
	assert.Equal(t, layerfs.Symlink, info.Type)

	_, err = h.GetInfo("missing")
	require.ErrorIs(t, err, layerfs.ErrNotFound)
}

func TestGetInfo_Precedence(t *testing.T) {
	t.Parallel()

	baseA := t.TempDir()
	baseB := t.TempDir()

	writeTestFile(t, filepath.Join(baseA, "entry"), "file on a")
	require.NoError(t, os.Mkdir(filepath.Join(baseB, "entry"), 0o755))

	h := setupHandler(t, layerfs.Descriptor{BasePaths: [layerfs.MaxMounts]string{baseA, baseB}})

	info, err := h.GetInfo("entry")
	require.NoError(t, err)
	assert.Equal(t, layerfs.Directory, info.Type)

	require.NoError(t, h.RemoveMount(baseB))

	info, err = h.GetInfo("entry")
	require.NoError(t, err)
	assert.Equal(t, layerfs.Regular, info.Type)
	assert.Equal(t, uint64(len("file on a")), info.Size)
}

func TestChecksum(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	content := []byte("layered content")
	writeTestFile(t, filepath.Join(base, "f.bin"), string(content))

	h := setupHandler(t, layerfs.Descriptor{BasePaths: [layerfs.MaxMounts]string{base}})

	sum, err := h.Checksum("f.bin")
	require.NoError(t, err)

	want := blake3.Sum256(content)
	assert.Equal(t, hex.EncodeToString(want[:]), sum)

	_, err = h.Checksum("missing")
	require.ErrorIs(t, err, layerfs.ErrNotFound)

	sum, err = h.ChecksumWith("f.bin", layerfs.ChecksumXXHash)
	require.NoError(t, err)

	var digest [8]byte
	binary.BigEndian.PutUint64(digest[:], xxhash.Sum64(content))
	assert.Equal(t, hex.EncodeToString(digest[:]), sum)

	_, err = h.ChecksumWith("f.bin", "md4")
	require.ErrorIs(t, err, layerfs.ErrUnsupportedChecksum)
}

func TestCwd(t *testing.T) {
	t.Parallel()

	want, err := os.Getwd()
	require.NoError(t, err)

	h := setupHandler(t, layerfs.Descriptor{})

	got, err := h.Cwd()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileType_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "none", layerfs.None.String())
	assert.Equal(t, "regular", layerfs.Regular.String())
	assert.Equal(t, "directory", layerfs.Directory.String())
	assert.Equal(t, "symlink", layerfs.Symlink.String())
	assert.Equal(t, "FileType(9)", layerfs.FileType(9).String())
}
