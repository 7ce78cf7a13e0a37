// Package exec hands a prepared argv and environment to the operating system,
// either by replacing the current process or by running a child under a
// pseudo terminal.
package exec

import (
	"errors"
	"os/exec"
	"strings"
)

// ErrEmptyArgv is returned when there is nothing to run.
var ErrEmptyArgv = errors.New("empty argv")

// Executor replaces the current process.
type Executor interface {
	// Exec runs argv[0] with argv and env in place of the current process.
	// On success it does not return.
	Exec(argv, env []string) error
}

// RealExecutor is the production implementation.
type RealExecutor struct{}

// lookPath resolves name through PATH unless it already contains a slash.
func lookPath(name string) (string, error) {
	if strings.Contains(name, "/") {
		return name, nil
	}
	return exec.LookPath(name)
}
