//go:build unix

package exec

import (
	"fmt"
	"syscall"
)

var execFunc = syscall.Exec

// Exec replaces the current process using syscall.Exec.
func (e *RealExecutor) Exec(argv, env []string) error {
	if len(argv) == 0 {
		return ErrEmptyArgv
	}

	binary, err := lookPath(argv[0])
	if err != nil {
		return err
	}

	// #nosec G204 -- argv is what the user asked to launch.
	if err := execFunc(binary, argv, env); err != nil {
		return fmt.Errorf("exec %s: %w", binary, err)
	}
	return nil
}
