package exec

import (
	"io"
	"os"
)

// Session runs a child process attached to a pseudo terminal.
type Session struct {
	Argv   []string
	Env    []string
	Dir    string    // working directory, empty for the current one
	Stdin  *os.File  // defaults to os.Stdin
	Stdout io.Writer // defaults to os.Stdout
}

func (s *Session) stdin() *os.File {
	if s.Stdin == nil {
		return os.Stdin
	}
	return s.Stdin
}

func (s *Session) stdout() io.Writer {
	if s.Stdout == nil {
		return os.Stdout
	}
	return s.Stdout
}
