package doctor

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertti/prefixrun/pkg/layout"
	"github.com/vertti/prefixrun/pkg/testutil"
)

type mockFileSystem struct {
	StatFunc func(name string) (fs.FileInfo, error)
}

func (m *mockFileSystem) Stat(name string) (fs.FileInfo, error) {
	return m.StatFunc(name)
}

func statMode(mode fs.FileMode) func(string) (fs.FileInfo, error) {
	return func(name string) (fs.FileInfo, error) {
		return &testutil.FileInfo{NameValue: filepath.Base(name), ModeValue: mode}, nil
	}
}

func statErr(err error) func(string) (fs.FileInfo, error) {
	return func(string) (fs.FileInfo, error) { return nil, err }
}

func TestCheck_Run(t *testing.T) {
	tests := []struct {
		name       string
		check      Check
		wantStatus Status
		wantDetail string
	}{
		{"dir ok", Check{Label: "prefix", Path: "/p", Expect: ExpectDir, FS: &mockFileSystem{StatFunc: statMode(fs.ModeDir | 0o700)}}, StatusOK, "permissions: -rwx------"},
		{"dir is file", Check{Label: "home", Path: "/p/home", Expect: ExpectDir, FS: &mockFileSystem{StatFunc: statMode(0o644)}}, StatusFail, "expected directory, got file"},
		{"file ok", Check{Label: "preload", Path: "/p/lib.so", Expect: ExpectFile, FS: &mockFileSystem{StatFunc: statMode(0o644)}}, StatusOK, ""},
		{"file is dir", Check{Label: "preload", Path: "/p/lib.so", Expect: ExpectFile, FS: &mockFileSystem{StatFunc: statMode(fs.ModeDir | 0o755)}}, StatusFail, "expected regular file, got directory"},
		{"file is socket", Check{Label: "preload", Path: "/p/lib.so", Expect: ExpectFile, FS: &mockFileSystem{StatFunc: statMode(fs.ModeSocket | 0o755)}}, StatusFail, "got socket"},
		{"executable ok", Check{Label: "shell", Path: "/p/bin/sh", Expect: ExpectExecutable, FS: &mockFileSystem{StatFunc: statMode(0o755)}}, StatusOK, ""},
		{"not executable", Check{Label: "shell", Path: "/p/bin/sh", Expect: ExpectExecutable, FS: &mockFileSystem{StatFunc: statMode(0o644)}}, StatusFail, "not executable"},
		{"missing", Check{Label: "tmp", Path: "/p/tmp", Expect: ExpectDir, FS: &mockFileSystem{StatFunc: statErr(fs.ErrNotExist)}}, StatusFail, "not found"},
		{"permission denied", Check{Label: "tmp", Path: "/p/tmp", Expect: ExpectDir, FS: &mockFileSystem{StatFunc: statErr(fs.ErrPermission)}}, StatusFail, "permission denied"},
		{"other error", Check{Label: "tmp", Path: "/p/tmp", Expect: ExpectDir, FS: &mockFileSystem{StatFunc: statErr(errors.New("io error"))}}, StatusFail, "stat failed: io error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.check.Run()
			assert.Equal(t, tt.wantStatus, result.Status, "details: %v", result.Details)
			assert.Equal(t, tt.check.Label+": "+tt.check.Path, result.Name)
			if tt.wantDetail != "" {
				assert.True(t, testutil.ContainsDetail(result.Details, tt.wantDetail), "details %v should contain %q", result.Details, tt.wantDetail)
			}
			if tt.wantStatus == StatusFail {
				assert.Error(t, result.Err)
			}
		})
	}
}

func TestForLayout(t *testing.T) {
	checks := ForLayout(layout.Derive("/p"), &RealFileSystem{})

	var labels, paths []string
	for _, c := range checks {
		labels = append(labels, c.Label)
		paths = append(paths, c.Path)
	}
	assert.Equal(t, []string{"prefix", "home", "tmp", "bin", "shell", "preload"}, labels)
	assert.Equal(t, []string{"/p", "/p/home", "/p/tmp", "/p/usr/bin", "/p/usr/bin/sh", "/p/usr/lib/libtermux-exec.so"}, paths)
}

// makePrefix creates a complete prefix tree under a temp dir.
func makePrefix(t *testing.T) layout.Layout {
	t.Helper()
	l := layout.Derive(t.TempDir())
	for _, dir := range []string{l.Home, l.TmpDir(), l.Bin, filepath.Dir(l.Preload)} {
		require.NoError(t, os.MkdirAll(dir, 0o700))
	}
	require.NoError(t, os.WriteFile(filepath.Join(l.Bin, "sh"), []byte("#!/bin/sh\n"), 0o700)) //nolint:gosec // test fixture
	require.NoError(t, os.WriteFile(l.Preload, []byte("\x7fELF"), 0o600))
	return l
}

func TestRunAll(t *testing.T) {
	l := makePrefix(t)

	results, ok := RunAll(ForLayout(l, &RealFileSystem{}))
	assert.True(t, ok, "results: %+v", results)
	assert.Len(t, results, 6)

	require.NoError(t, os.Remove(l.Preload))
	results, ok = RunAll(ForLayout(l, &RealFileSystem{}))
	assert.False(t, ok)
	assert.Equal(t, StatusFail, results[5].Status)
	assert.True(t, results[0].OK())
}

func TestResult_Helpers(t *testing.T) {
	r := &Result{Name: "x"}
	r.AddDetailf("path: %s", "/p")
	got := r.Failf("value %d is invalid", 42)

	assert.Equal(t, StatusFail, got.Status)
	assert.Equal(t, []string{"path: /p", "value 42 is invalid"}, got.Details)
	assert.EqualError(t, got.Err, "value 42 is invalid")
	assert.False(t, got.OK())
}
