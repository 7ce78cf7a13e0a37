// Package cmdline builds the argument vector used to launch an executable
// inside the prefix, prepending an in-prefix interpreter when the file's
// header asks for one.
package cmdline

// Logger receives diagnostics the builder never returns to its caller.
// *log.Logger from charmbracelet/log satisfies it.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(interface{}, ...interface{}) {}

// Builder turns an executable path and its arguments into an argv.
// A Builder holds no mutable state and may be shared between goroutines.
type Builder struct {
	BinDir string     // in-prefix directory holding interpreters
	FS     FileSystem // injected for testing
	Log    Logger     // optional
}

// Result holds the classification and the argv derived from it.
type Result struct {
	Classification
	Argv []string
}

// HasInterpreter reports whether Argv starts with a prepended interpreter.
func (r Result) HasInterpreter() bool {
	return r.Interpreter != ""
}

// Build classifies executable and returns the argv to spawn:
// [interpreter] executable arguments...
//
// Read failures are logged and otherwise ignored: the executable is then run
// directly and any real problem surfaces when it is spawned.
func (b *Builder) Build(executable string, arguments []string) Result {
	var c Classification

	header, err := b.fs().ReadHeader(executable, HeaderSize)
	if err != nil {
		b.log().Debug("could not read executable header", "path", executable, "err", err)
	} else {
		c = Classify(header, b.BinDir)
	}

	argv := make([]string, 0, len(arguments)+2)
	if c.Interpreter != "" {
		argv = append(argv, c.Interpreter)
	}
	argv = append(argv, executable)
	argv = append(argv, arguments...)

	b.log().Debug("built command line", "path", executable, "kind", c.Kind, "interpreter", c.Interpreter)

	return Result{Classification: c, Argv: argv}
}

func (b *Builder) fs() FileSystem {
	if b.FS == nil {
		return &RealFileSystem{}
	}
	return b.FS
}

func (b *Builder) log() Logger {
	if b.Log == nil {
		return nopLogger{}
	}
	return b.Log
}
