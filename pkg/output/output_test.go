package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vertti/prefixrun/pkg/cmdline"
	"github.com/vertti/prefixrun/pkg/doctor"
)

func noColors(t *testing.T) {
	t.Helper()
	oldGreen, oldRed, oldDim, oldReset := green, red, dim, reset
	green, red, dim, reset = "", "", "", ""
	t.Cleanup(func() { green, red, dim, reset = oldGreen, oldRed, oldDim, oldReset })
}

func TestFormatLabel(t *testing.T) {
	noColors(t)

	tests := []struct {
		input string
		want  string
	}{
		{"bin: /p/usr/bin", "bin: /p/usr/bin"},
		{"no colon here", "no colon here"},
		{"multiple: colons: here", "multiple: colons: here"},
		{"", ""},
	}

	for _, tt := range tests {
		got := formatLabel(tt.input)
		if got != tt.want {
			t.Errorf("formatLabel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatLabelWithColors(t *testing.T) {
	oldDim, oldReset := dim, reset
	defer func() { dim, reset = oldDim, oldReset }()
	dim, reset = "[DIM]", "[RESET]"

	tests := []struct {
		input string
		want  string
	}{
		{"bin: /p/usr/bin", "[DIM]bin:[RESET] /p/usr/bin"},
		{"multiple: colons: here", "[DIM]multiple:[RESET] colons: here"},
		{"no colon here", "no colon here"},
	}

	for _, tt := range tests {
		got := formatLabel(tt.input)
		if got != tt.want {
			t.Errorf("formatLabel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPrintResultOK(t *testing.T) {
	noColors(t)
	var buf bytes.Buffer

	PrintResult(&buf, doctor.Result{
		Name:    "bin: /p/usr/bin",
		Status:  doctor.StatusOK,
		Details: []string{"permissions: -rwx------"},
	})

	expected := "[OK] bin: /p/usr/bin\n     permissions: -rwx------\n"
	if buf.String() != expected {
		t.Errorf("PrintResult output = %q, want %q", buf.String(), expected)
	}
}

func TestPrintResultFail(t *testing.T) {
	noColors(t)
	var buf bytes.Buffer

	PrintResult(&buf, doctor.Result{
		Name:    "preload: /missing.so",
		Status:  doctor.StatusFail,
		Details: []string{"not found"},
	})

	expected := "[FAIL] preload: /missing.so\n       not found\n"
	if buf.String() != expected {
		t.Errorf("PrintResult output = %q, want %q", buf.String(), expected)
	}
}

func TestPrintLines(t *testing.T) {
	var buf bytes.Buffer
	PrintLines(&buf, []string{"HOME=/p/home", "TERM=xterm-256color"})

	if buf.String() != "HOME=/p/home\nTERM=xterm-256color\n" {
		t.Errorf("PrintLines output = %q", buf.String())
	}
}

func TestPrintClassification(t *testing.T) {
	noColors(t)

	tests := []struct {
		name string
		c    cmdline.Classification
		want []string
	}{
		{
			name: "resolved shebang",
			c:    cmdline.Classification{Kind: cmdline.KindShebang, Shebang: "/usr/bin/env", Interpreter: "/p/usr/bin/env"},
			want: []string{"path: /x", "kind: shebang", "shebang: /usr/bin/env", "interpreter: /p/usr/bin/env"},
		},
		{
			name: "elf",
			c:    cmdline.Classification{Kind: cmdline.KindElf},
			want: []string{"path: /x", "kind: elf", "interpreter: (none, run directly)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			PrintClassification(&buf, "/x", tt.c)
			got := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("PrintClassification = %q, want %q", got, tt.want)
			}
		})
	}
}
