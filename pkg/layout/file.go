package layout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
)

// FileName is the config file searched for by FindFile.
const FileName = ".prefixrun.json"

// FindFile returns explicitPath if it exists, otherwise walks up from startDir
// looking for FileName. The walk stops at the home directory, a git checkout
// root, or the filesystem root.
func FindFile(startDir, explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file not found: %w", err)
		}
		return explicitPath, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		configPath := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		if currentDir == homeDir {
			break
		}

		if _, err := os.Stat(filepath.Join(currentDir, ".git")); err == nil {
			break
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", ErrNoConfigFile
}

// ErrNoConfigFile is returned by FindFile when the walk finds nothing.
var ErrNoConfigFile = errors.New(FileName + " not found")

// Load reads a JSON config file and applies it on top of base.
func Load(path string, base Layout) (Layout, error) {
	data, err := os.ReadFile(path) //nolint:gosec // intentional: reading the layout config file
	if err != nil {
		return base, fmt.Errorf("failed to read config file: %w", err)
	}
	l, err := Parse(string(data), base)
	if err != nil {
		return base, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Parse applies the keys present in a JSON document on top of base.
// Setting "prefix" re-derives every path the document leaves out.
func Parse(doc string, base Layout) (Layout, error) {
	if !gjson.Valid(doc) {
		return base, errors.New("invalid JSON")
	}

	l := base
	if prefix := gjson.Get(doc, "prefix"); prefix.Exists() {
		if prefix.Type != gjson.String {
			return base, fmt.Errorf("key %q must be a string", "prefix")
		}
		l = Derive(prefix.String())
	}

	fields := map[string]*string{
		"home":    &l.Home,
		"bin":     &l.Bin,
		"preload": &l.Preload,
	}
	for key, dst := range fields {
		v := gjson.Get(doc, key)
		if !v.Exists() {
			continue
		}
		if v.Type != gjson.String {
			return base, fmt.Errorf("key %q must be a string", key)
		}
		*dst = v.String()
	}

	return l, nil
}
