// ABOUTME: Tests for prompt input handling: editing, UTF-8 assembly, control keys
// ABOUTME: Feeds byte sequences as the raw-mode poll would deliver them

package prompt

import "testing"

func TestFeed_TypeAndSubmit(t *testing.T) {
	t.Parallel()

	p := New("> ")
	if got := p.Feed([]byte("ls -la")); got != ActionNone {
		t.Fatalf("Feed = %v, want ActionNone", got)
	}
	if p.Line() != "> ls -la" {
		t.Errorf("Line = %q", p.Line())
	}
	if got := p.Feed([]byte{'\r'}); got != ActionSubmit {
		t.Fatalf("Feed(CR) = %v, want ActionSubmit", got)
	}
	if got := p.Take(); got != "ls -la" {
		t.Errorf("Take = %q", got)
	}
	if p.Len() != 0 {
		t.Error("Take must reset the buffer")
	}
}

func TestFeed_Backspace(t *testing.T) {
	t.Parallel()

	p := New("$ ")
	p.Feed([]byte("abc"))
	p.Feed([]byte{0x7f})
	if p.Line() != "$ ab" {
		t.Errorf("Line = %q, want %q", p.Line(), "$ ab")
	}
	// Backspace on empty buffer is a no-op.
	p.Feed([]byte{0x7f, 0x7f, 0x7f, 0x7f})
	if p.Line() != "$ " {
		t.Errorf("Line = %q, want bare prefix", p.Line())
	}
}

func TestFeed_KillLine(t *testing.T) {
	t.Parallel()

	p := New("> ")
	p.Feed([]byte("rm -rf build"))
	p.Feed([]byte{0x15})
	if p.Len() != 0 {
		t.Errorf("Ctrl-U left %d runes", p.Len())
	}
}

func TestFeed_ControlActions(t *testing.T) {
	t.Parallel()

	p := New("> ")
	if got := p.Feed([]byte{0x03}); got != ActionInterrupt {
		t.Errorf("Ctrl-C = %v, want ActionInterrupt", got)
	}

	p = New("> ")
	if got := p.Feed([]byte{0x04}); got != ActionEOF {
		t.Errorf("Ctrl-D on empty = %v, want ActionEOF", got)
	}

	p = New("> ")
	p.Feed([]byte("x"))
	if got := p.Feed([]byte{0x04}); got != ActionNone {
		t.Errorf("Ctrl-D on non-empty = %v, want ActionNone", got)
	}
}

func TestFeed_UTF8AcrossReads(t *testing.T) {
	t.Parallel()

	p := New("> ")
	seq := []byte("é") // 2 bytes
	p.Feed(seq[:1])
	if p.Len() != 0 {
		t.Error("partial rune must not land in the buffer")
	}
	p.Feed(seq[1:])
	if p.Line() != "> é" {
		t.Errorf("Line = %q, want %q", p.Line(), "> é")
	}
}

func TestFeed_EscapeSequencesSwallowed(t *testing.T) {
	t.Parallel()

	p := New("> ")
	p.Feed([]byte("a"))
	p.Feed([]byte{0x1b, '[', 'A'}) // arrow up
	p.Feed([]byte{0x1b, '[', '1', '5', '~'})
	p.Feed([]byte("b"))
	if p.Line() != "> ab" {
		t.Errorf("Line = %q, escape bytes leaked", p.Line())
	}
}

func TestFeed_SubmitEmpty(t *testing.T) {
	t.Parallel()

	p := New("> ")
	if got := p.Feed([]byte{'\n'}); got != ActionSubmit {
		t.Fatalf("Feed(LF) = %v", got)
	}
	if got := p.Take(); got != "" {
		t.Errorf("Take = %q, want empty", got)
	}
}
