package cmdline

import (
	"bytes"
	"strings"
)

// Kind is the header-based classification of an executable.
type Kind int

const (
	KindUnknown     Kind = iota // unreadable or too short to tell
	KindElf                     // native binary, run directly
	KindShebang                 // starts with #!
	KindPlainScript             // no recognised header, run with the bundled shell
)

func (k Kind) String() string {
	switch k {
	case KindElf:
		return "elf"
	case KindShebang:
		return "shebang"
	case KindPlainScript:
		return "script"
	default:
		return "unknown"
	}
}

const (
	// HeaderSize is how many leading bytes are inspected.
	HeaderSize = 256
	// minHeaderLen is the shortest header that gets classified at all.
	minHeaderLen = 5
)

var (
	elfMagic     = []byte{0x7F, 'E', 'L', 'F'}
	shebangMagic = []byte("#!")
)

// Classification is the outcome of inspecting an executable's header.
type Classification struct {
	Kind        Kind
	Shebang     string // interpreter token after #!, empty if none was terminated
	Interpreter string // resolved in-prefix interpreter, empty to run directly
}

// Classify inspects header and decides which interpreter, if any, should run it.
// Shebang interpreters under /usr or /bin are mapped to the same base name in
// binDir; any other shebang path is left alone.
func Classify(header []byte, binDir string) Classification {
	if len(header) < minHeaderLen {
		return Classification{Kind: KindUnknown}
	}

	switch {
	case bytes.HasPrefix(header, elfMagic):
		return Classification{Kind: KindElf}
	case bytes.HasPrefix(header, shebangMagic):
		c := Classification{Kind: KindShebang}
		token, ok := shebangToken(header[len(shebangMagic):])
		if !ok {
			return c
		}
		c.Shebang = token
		if strings.HasPrefix(token, "/usr") || strings.HasPrefix(token, "/bin") {
			c.Interpreter = binDir + "/" + baseName(token)
		}
		return c
	default:
		return Classification{Kind: KindPlainScript, Interpreter: binDir + "/sh"}
	}
}

// shebangToken returns the first space or newline delimited token of b.
// A token still open when b runs out is not reported.
func shebangToken(b []byte) (string, bool) {
	start := -1
	for i, c := range b {
		if c == ' ' || c == '\n' {
			if start >= 0 {
				return string(b[start:i]), true
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	return "", false
}

// baseName returns the last non-empty path segment, so "/usr/bin/" yields "bin".
func baseName(p string) string {
	parts := strings.FieldsFunc(p, func(r rune) bool { return r == '/' })
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}
