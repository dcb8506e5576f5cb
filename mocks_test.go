package layerfs

import (
	"io/fs"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

type mockOsProvider struct {
	mock.Mock
}

func newMockOsProvider(t *testing.T) *mockOsProvider {
	t.Helper()

	m := &mockOsProvider{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *mockOsProvider) Getwd() (string, error) {
	ret := m.Called()

	return ret.String(0), ret.Error(1)
}

func (m *mockOsProvider) Open(name string) (File, error) {
	ret := m.Called(name)

	var f File
	if v, ok := ret.Get(0).(File); ok {
		f = v
	}

	return f, ret.Error(1)
}

func (m *mockOsProvider) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	ret := m.Called(name, flag, perm)

	var f File
	if v, ok := ret.Get(0).(File); ok {
		f = v
	}

	return f, ret.Error(1)
}

func (m *mockOsProvider) Remove(name string) error {
	return m.Called(name).Error(0)
}

type mockUnixProvider struct {
	mock.Mock
}

func newMockUnixProvider(t *testing.T) *mockUnixProvider {
	t.Helper()

	m := &mockUnixProvider{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *mockUnixProvider) Lstat(path string, stat *unix.Stat_t) error {
	return m.Called(path, stat).Error(0)
}

func (m *mockUnixProvider) Mkdir(path string, mode uint32) error {
	return m.Called(path, mode).Error(0)
}

type mockFile struct {
	mock.Mock
}

func newMockFile(t *testing.T) *mockFile {
	t.Helper()

	m := &mockFile{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *mockFile) Read(p []byte) (int, error) {
	ret := m.Called(p)

	return ret.Int(0), ret.Error(1)
}

func (m *mockFile) Write(p []byte) (int, error) {
	ret := m.Called(p)

	return ret.Int(0), ret.Error(1)
}

func (m *mockFile) Close() error {
	return m.Called().Error(0)
}

func (m *mockFile) Stat() (fs.FileInfo, error) {
	ret := m.Called()

	var info fs.FileInfo
	if v, ok := ret.Get(0).(fs.FileInfo); ok {
		info = v
	}

	return info, ret.Error(1)
}

type fakeFileInfo struct {
	name  string
	size  int64
	isDir bool
}

func (f fakeFileInfo) Name() string       { return f.name }
func (f fakeFileInfo) Size() int64        { return f.size }
func (f fakeFileInfo) Mode() fs.FileMode  { return 0o644 }
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return f.isDir }
func (f fakeFileInfo) Sys() any           { return nil }

// setupMocked returns a valid Handler over fresh provider mocks.
func setupMocked(t *testing.T, desc Descriptor) (*Handler, *mockOsProvider, *mockUnixProvider) {
	t.Helper()

	osMock := newMockOsProvider(t)
	unixMock := newMockUnixProvider(t)

	h := NewHandler(osMock, unixMock)
	require.NoError(t, h.Setup(desc), "setup should succeed")

	return h, osMock, unixMock
}
