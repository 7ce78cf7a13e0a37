// Package output renders results for the terminal.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/prefixrun/pkg/cmdline"
	"github.com/vertti/prefixrun/pkg/doctor"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, dim, reset = "", "", "", ""
	}
}

// PrintResult writes a check result with colored status.
func PrintResult(w io.Writer, r doctor.Result) {
	indent := "     "
	if r.OK() {
		_, _ = fmt.Fprintf(w, "%s[OK]%s %s\n", green, reset, formatLabel(r.Name))
	} else {
		indent = "       "
		_, _ = fmt.Fprintf(w, "%s[FAIL]%s %s\n", red, reset, formatLabel(r.Name))
	}
	for _, d := range r.Details {
		_, _ = fmt.Fprintf(w, "%s%s\n", indent, formatLabel(d))
	}
}

// PrintLines writes one entry per line, unstyled, so the output can be piped.
func PrintLines(w io.Writer, lines []string) {
	for _, l := range lines {
		_, _ = fmt.Fprintln(w, l)
	}
}

// PrintClassification writes what was found in an executable's header.
func PrintClassification(w io.Writer, path string, c cmdline.Classification) {
	_, _ = fmt.Fprintln(w, formatLabel("path: "+path))
	_, _ = fmt.Fprintln(w, formatLabel("kind: "+c.Kind.String()))
	if c.Shebang != "" {
		_, _ = fmt.Fprintln(w, formatLabel("shebang: "+c.Shebang))
	}
	interpreter := c.Interpreter
	if interpreter == "" {
		interpreter = "(none, run directly)"
	}
	_, _ = fmt.Fprintln(w, formatLabel("interpreter: "+interpreter))
}

// formatLabel dims the "label:" part of a "label: value" line.
func formatLabel(s string) string {
	label, rest, ok := strings.Cut(s, ": ")
	if !ok {
		return s
	}
	return dim + label + ":" + reset + " " + rest
}
