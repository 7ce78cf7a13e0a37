package cmdline

import (
	"io"
	"os"
)

// FileSystem abstracts file access for testability.
type FileSystem interface {
	ReadHeader(name string, limit int64) ([]byte, error)
}

// RealFileSystem reads from the actual file system.
type RealFileSystem struct{}

// ReadHeader returns at most the first limit bytes of the named file.
func (r *RealFileSystem) ReadHeader(name string, limit int64) ([]byte, error) {
	f, err := os.Open(name) //nolint:gosec // intentional: inspecting the file about to be launched
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return io.ReadAll(io.LimitReader(f, limit))
}

// mockFileSystem is a test double for FileSystem.
type mockFileSystem struct {
	ReadHeaderFunc func(name string, limit int64) ([]byte, error)
}

// ReadHeader calls the mock function.
func (m *mockFileSystem) ReadHeader(name string, limit int64) ([]byte, error) {
	return m.ReadHeaderFunc(name, limit)
}
