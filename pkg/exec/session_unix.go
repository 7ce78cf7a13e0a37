//go:build unix

package exec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/term"
)

// Run starts the child, relays I/O until it exits and returns its exit code.
// When Stdin is a terminal it is switched to raw mode for the duration and
// window size changes are forwarded to the child.
// Cancelling ctx kills the child.
func (s *Session) Run(ctx context.Context) (int, error) {
	if len(s.Argv) == 0 {
		return -1, ErrEmptyArgv
	}

	binary, err := lookPath(s.Argv[0])
	if err != nil {
		return -1, err
	}

	cmd := exec.CommandContext(ctx, binary, s.Argv[1:]...)
	cmd.Args = s.Argv
	cmd.Env = s.Env
	cmd.Dir = s.Dir

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return -1, fmt.Errorf("start %s: %w", binary, err)
	}
	defer func() { _ = ptmx.Close() }()

	in := s.stdin()
	if fd := int(in.Fd()); term.IsTerminal(fd) {
		winch := make(chan os.Signal, 1)
		signal.Notify(winch, syscall.SIGWINCH)
		go func() {
			for range winch {
				_ = pty.InheritSize(in, ptmx)
			}
		}()
		winch <- syscall.SIGWINCH
		defer func() {
			signal.Stop(winch)
			close(winch)
		}()

		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return -1, fmt.Errorf("raw mode: %w", err)
		}
		defer func() { _ = term.Restore(fd, oldState) }()
	}

	go func() { _, _ = io.Copy(ptmx, in) }()
	// The master side reports EIO once the child closes the terminal.
	_, _ = io.Copy(s.stdout(), ptmx)

	err = cmd.Wait()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ctx.Err() != nil {
			return exitErr.ExitCode(), ctx.Err()
		}
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
