// ABOUTME: Tests for VisibleWidth, DisplayWidth, Truncate, and StripANSI
// ABOUTME: Covers ANSI skipping, Unicode scalars, truncated escapes, and reset-on-clip

package width

import (
	"strings"
	"testing"
)

func TestVisibleWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty string", input: "", want: 0},
		{name: "ascii", input: "hello", want: 5},
		{name: "ansi colored", input: "\x1b[31mhi\x1b[0m", want: 2},
		{name: "accented scalars not bytes", input: "héllo", want: 5},
		{name: "cjk counts scalars", input: "你好", want: 2},
		{name: "only ansi", input: "\x1b[38;5;208m\x1b[0m", want: 0},
		{name: "truncated escape at line end", input: "ab\x1b[31", want: 4},
		{name: "lone esc", input: "ab\x1b", want: 3},
		{name: "multiple sequences", input: "\x1b[1m\x1b[36mx\x1b[0m", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := VisibleWidth(tt.input)
			if got != tt.want {
				t.Errorf("VisibleWidth(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestDisplayWidth_WideClusters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "cjk double width", input: "你好", want: 4},
		{name: "ansi ignored", input: "\x1b[32mok\x1b[0m", want: 2},
		{name: "plain", input: "uptime 3 days", want: 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DisplayWidth(tt.input); got != tt.want {
				t.Errorf("DisplayWidth(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		maxCols int
		want    string
	}{
		{name: "no clip needed", input: "host", maxCols: 10, want: "host"},
		{name: "ascii clip", input: "hostname-with-tail", maxCols: 8, want: "hostname"},
		{name: "zero budget", input: "abc", maxCols: 0, want: ""},
		{name: "wide cluster not split", input: "a你b", maxCols: 2, want: "a"},
		{name: "colored clip gets reset", input: "\x1b[31mredline\x1b[0m", maxCols: 3, want: "\x1b[31mred\x1b[0m"},
		{name: "color kept when fits", input: "\x1b[31mok\x1b[0m", maxCols: 5, want: "\x1b[31mok\x1b[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Truncate(tt.input, tt.maxCols); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxCols, got, tt.want)
			}
		})
	}
}

func TestStripANSI(t *testing.T) {
	t.Parallel()

	if got := StripANSI("\x1b[31mhi\x1b[0m"); got != "hi" {
		t.Errorf("StripANSI = %q, want %q", got, "hi")
	}
	if got := StripANSI("plain"); got != "plain" {
		t.Errorf("StripANSI(plain) = %q", got)
	}
	// Unterminated sequence: introducer dropped, rest kept as content.
	if got := StripANSI("ab\x1b[31"); got != "ab31" {
		t.Errorf("StripANSI(truncated) = %q, want %q", got, "ab31")
	}
}

func BenchmarkVisibleWidth_ASCII(b *testing.B) {
	s := strings.Repeat("|/-\\", 20)
	for b.Loop() {
		VisibleWidth(s)
	}
}

func BenchmarkVisibleWidth_Colored(b *testing.B) {
	s := strings.Repeat("\x1b[38;5;208m@#\x1b[0m", 20)
	for b.Loop() {
		VisibleWidth(s)
	}
}
