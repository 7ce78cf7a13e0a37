// Package doctor checks that a prefix layout is actually present on disk.
// The command line and environment builders never do this themselves.
package doctor

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/vertti/prefixrun/pkg/layout"
)

// Expect is what a checked path must be.
type Expect int

const (
	ExpectDir Expect = iota
	ExpectFile
	ExpectExecutable
)

// FileSystem abstracts file system operations for testability.
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
}

// RealFileSystem implements FileSystem using the actual file system.
type RealFileSystem struct{}

// Stat returns file info for the given path.
func (r *RealFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Check verifies a single layout path.
type Check struct {
	Label  string // layout field, e.g. "bin"
	Path   string
	Expect Expect
	FS     FileSystem // injected for testing
}

// Run executes the check.
func (c *Check) Run() Result {
	result := Result{
		Name: fmt.Sprintf("%s: %s", c.Label, c.Path),
	}

	info, err := c.FS.Stat(c.Path)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return result.Fail("not found", err)
		case os.IsPermission(err):
			return result.Fail("permission denied", err)
		default:
			return result.Failf("stat failed: %v", err)
		}
	}

	switch c.Expect {
	case ExpectDir:
		if !info.IsDir() {
			return result.Failf("expected directory, got %s", describe(info.Mode()))
		}
	case ExpectFile, ExpectExecutable:
		if !info.Mode().IsRegular() {
			return result.Failf("expected regular file, got %s", describe(info.Mode()))
		}
		if c.Expect == ExpectExecutable && info.Mode().Perm()&0o111 == 0 {
			return result.Failf("not executable (permissions: %s)", info.Mode().Perm())
		}
	}

	result.AddDetailf("permissions: %s", info.Mode().Perm())
	result.Status = StatusOK
	return result
}

func describe(m fs.FileMode) string {
	switch {
	case m.IsDir():
		return "directory"
	case m&fs.ModeSymlink != 0:
		return "symlink"
	case m&fs.ModeSocket != 0:
		return "socket"
	case m.IsRegular():
		return "file"
	default:
		return "special file"
	}
}

// ForLayout returns the checks covering every path in l, including the
// fallback shell used for scripts without a header.
func ForLayout(l layout.Layout, fsys FileSystem) []Check {
	return []Check{
		{Label: "prefix", Path: l.Prefix, Expect: ExpectDir, FS: fsys},
		{Label: "home", Path: l.Home, Expect: ExpectDir, FS: fsys},
		{Label: "tmp", Path: l.TmpDir(), Expect: ExpectDir, FS: fsys},
		{Label: "bin", Path: l.Bin, Expect: ExpectDir, FS: fsys},
		{Label: "shell", Path: l.Bin + "/sh", Expect: ExpectExecutable, FS: fsys},
		{Label: "preload", Path: l.Preload, Expect: ExpectFile, FS: fsys},
	}
}

// RunAll runs every check and reports whether all of them passed.
func RunAll(checks []Check) ([]Result, bool) {
	results := make([]Result, 0, len(checks))
	ok := true
	for i := range checks {
		r := checks[i].Run()
		ok = ok && r.OK()
		results = append(results, r)
	}
	return results, ok
}
