//go:build windows

package exec

import (
	"context"
	"errors"
)

// ErrExecNotSupported indicates launching is not available on Windows.
var ErrExecNotSupported = errors.New("launching into the prefix is not supported on Windows")

// Exec is not supported on Windows.
func (e *RealExecutor) Exec(argv, env []string) error {
	return ErrExecNotSupported
}

// Run is not supported on Windows.
func (s *Session) Run(ctx context.Context) (int, error) {
	return -1, ErrExecNotSupported
}
