// ABOUTME: Tests for flattening structured info JSON into panel lines
// ABOUTME: Covers scalar and object payloads, error modules, and malformed input

package sysinfo

import (
	"strings"
	"testing"
)

func TestParseJSON(t *testing.T) {
	t.Parallel()

	doc := `[
		{"type": "OS", "result": "Debian GNU/Linux 13"},
		{"type": "Uptime", "result": 4242},
		{"type": "Broken", "error": "no such module"},
		{"type": "Memory", "result": {"used": "2048", "total": "8192"}}
	]`

	lines, err := ParseJSON([]byte(doc))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}

	want := []string{
		"OS: Debian GNU/Linux 13",
		"Uptime: 4242",
		"Memory total: 8192",
		"Memory used: 2048",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines %v, want %d", len(lines), lines, len(want))
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}
}

func TestParseJSON_SkipsUnknownShapes(t *testing.T) {
	t.Parallel()

	doc := `[{"type": "List", "result": [1, 2, 3]}, {"type": "CPU", "result": "x"}, 42]`
	lines, err := ParseJSON([]byte(doc))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if len(lines) != 1 || lines[0] != "CPU: x" {
		t.Errorf("lines = %v, want only CPU", lines)
	}
}

func TestParseJSON_Errors(t *testing.T) {
	t.Parallel()

	if _, err := ParseJSON([]byte(`{"not": "an array"}`)); err == nil {
		t.Error("top-level object should fail")
	}
	if _, err := ParseJSON([]byte(`[{"truncated`)); err == nil {
		t.Error("malformed JSON should fail")
	}
}

func TestSplitLines(t *testing.T) {
	t.Parallel()

	got := splitLines([]byte("a\r\nb\r\n\r\n\r\n"))
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("splitLines = %v", got)
	}
}

func TestBuiltin(t *testing.T) {
	t.Parallel()

	lines := Builtin(true)
	if len(lines) < 2 {
		t.Fatalf("builtin panel too small: %v", lines)
	}
	// Second line underlines the header.
	if !strings.HasPrefix(lines[1], "-") {
		t.Errorf("line 1 = %q, want separator", lines[1])
	}
	for _, l := range lines {
		if strings.Contains(l, "\x1b") {
			t.Errorf("noColor panel carries ANSI: %q", l)
		}
	}
}
