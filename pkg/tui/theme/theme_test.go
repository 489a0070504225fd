// ABOUTME: Tests for color spec resolution and palette validation
// ABOUTME: Covers named, indexed, hex forms, and rejection of bad specs

package theme

import "testing"

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		spec    string
		want    string
		wantErr bool
	}{
		{name: "named", spec: "cyan", want: "\x1b[36m"},
		{name: "bright named", spec: "bright-magenta", want: "\x1b[95m"},
		{name: "case folded", spec: "RED", want: "\x1b[31m"},
		{name: "indexed", spec: "208", want: "\x1b[38;5;208m"},
		{name: "hex long", spec: "#5fd7ff", want: "\x1b[38;2;95;215;255m"},
		{name: "hex short", spec: "#fff", want: "\x1b[38;2;255;255;255m"},
		{name: "empty is zero", spec: "", want: ""},
		{name: "index out of range", spec: "300", wantErr: true},
		{name: "garbage", spec: "notacolor", wantErr: true},
		{name: "bad hex", spec: "#12345", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := Resolve(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Resolve(%q) succeeded, want error", tt.spec)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tt.spec, err)
			}
			if c.Code() != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.spec, c.Code(), tt.want)
			}
		})
	}
}

func TestResolvePalette(t *testing.T) {
	t.Parallel()

	colors, err := ResolvePalette([]string{"cyan", "33", "#abcdef"})
	if err != nil {
		t.Fatalf("ResolvePalette: %v", err)
	}
	if len(colors) != 3 {
		t.Fatalf("got %d colors, want 3", len(colors))
	}

	if _, err := ResolvePalette([]string{"cyan", ""}); err == nil {
		t.Error("expected error for empty palette entry")
	}
	if _, err := ResolvePalette([]string{"bogus"}); err == nil {
		t.Error("expected error for unknown palette entry")
	}
}
