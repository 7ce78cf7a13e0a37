// Package layout describes where the sandboxed prefix lives on disk.
package layout

import (
	"fmt"
	"path"
)

// DefaultPrefix is the root of the user-space toolchain on Android.
const DefaultPrefix = "/data/data/com.termux/files"

// Layout holds the fixed path configuration supplied by the host application.
type Layout struct {
	Prefix  string // root of the installed toolchain
	Home    string // HOME for launched processes
	Bin     string // directory holding in-prefix interpreters
	Preload string // shared object injected through LD_PRELOAD
}

// Default returns the layout of a stock Android installation.
func Default() Layout {
	return Derive(DefaultPrefix)
}

// Derive returns a layout with every path placed under prefix.
func Derive(prefix string) Layout {
	return Layout{
		Prefix:  prefix,
		Home:    prefix + "/home",
		Bin:     prefix + "/usr/bin",
		Preload: prefix + "/usr/lib/libtermux-exec.so",
	}
}

// TmpDir is used for both TMP and TMPDIR.
func (l Layout) TmpDir() string {
	return l.Prefix + "/tmp"
}

// UsrBin is prepended to PATH outside failsafe mode.
func (l Layout) UsrBin() string {
	return l.Prefix + "/usr/bin"
}

// Validate reports the first field that is empty or not absolute.
func (l Layout) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"prefix", l.Prefix},
		{"home", l.Home},
		{"bin", l.Bin},
		{"preload", l.Preload},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%s path is empty", f.name)
		}
		if !path.IsAbs(f.value) {
			return fmt.Errorf("%s path %q is not absolute", f.name, f.value)
		}
	}
	return nil
}
