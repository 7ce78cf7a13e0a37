// Package testutil holds test doubles shared between packages.
package testutil

import (
	"io/fs"
	"strings"
	"time"
)

// FileInfo is a test double for fs.FileInfo.
type FileInfo struct {
	NameValue string
	SizeValue int64
	ModeValue fs.FileMode
}

func (m *FileInfo) Name() string       { return m.NameValue }
func (m *FileInfo) Size() int64        { return m.SizeValue }
func (m *FileInfo) Mode() fs.FileMode  { return m.ModeValue }
func (m *FileInfo) IsDir() bool        { return m.ModeValue.IsDir() }
func (m *FileInfo) Sys() interface{}   { return nil }
func (m *FileInfo) ModTime() time.Time { return time.Unix(0, 0) }

// ContainsDetail checks if any detail string contains the given substring.
func ContainsDetail(details []string, substr string) bool {
	for _, d := range details {
		if strings.Contains(d, substr) {
			return true
		}
	}
	return false
}
