// ABOUTME: PromptState: a mutable input buffer fed raw bytes from the non-blocking poll
// ABOUTME: Handles UTF-8 assembly, backspace, kill-line, and control-key actions

package prompt

import (
	"strings"
	"unicode/utf8"
)

// Action is the loop-level outcome of feeding input bytes.
type Action int

const (
	// ActionNone means the buffer mutated (or nothing happened).
	ActionNone Action = iota
	// ActionSubmit means Enter was pressed; Take returns the line.
	ActionSubmit
	// ActionInterrupt means Ctrl-C was pressed.
	ActionInterrupt
	// ActionEOF means Ctrl-D on an empty buffer.
	ActionEOF
)

const (
	ctrlC     = 0x03
	ctrlD     = 0x04
	ctrlU     = 0x15
	backspace = 0x7f
	ctrlH     = 0x08
	escByte   = 0x1b
)

// Prompt owns the interactive input line. The rendering core only ever
// reads Line(); all mutation happens here.
type Prompt struct {
	prefix    string
	buf       []rune
	pending   []byte // incomplete UTF-8 tail across Feed calls
	submitted string
	inEscape  bool
	escCSI    bool
}

// New creates a Prompt rendered with the given prefix.
func New(prefix string) *Prompt {
	return &Prompt{prefix: prefix}
}

// Feed consumes raw input bytes, mutating the buffer. It returns the
// first terminal action encountered; remaining bytes after a submit
// are dropped (one command per session).
func (p *Prompt) Feed(data []byte) Action {
	for _, b := range data {
		if p.inEscape {
			p.feedEscape(b)
			continue
		}
		switch {
		case b == ctrlC:
			return ActionInterrupt
		case b == ctrlD:
			if len(p.buf) == 0 {
				return ActionEOF
			}
		case b == '\r' || b == '\n':
			p.submitted = string(p.buf)
			return ActionSubmit
		case b == backspace || b == ctrlH:
			p.pending = p.pending[:0]
			if len(p.buf) > 0 {
				p.buf = p.buf[:len(p.buf)-1]
			}
		case b == ctrlU:
			p.pending = p.pending[:0]
			p.buf = p.buf[:0]
		case b == escByte:
			p.inEscape = true
			p.escCSI = false
		case b < 0x20:
			// Other control bytes are ignored.
		default:
			p.feedByte(b)
		}
	}
	return ActionNone
}

// feedEscape swallows escape sequences (arrow keys and friends) so
// they never land in the buffer as garbage.
func (p *Prompt) feedEscape(b byte) {
	if !p.escCSI {
		if b == '[' || b == 'O' {
			p.escCSI = true
			return
		}
		// Two-byte sequence like ESC x: done.
		p.inEscape = false
		return
	}
	if b >= 0x40 && b <= 0x7E {
		p.inEscape = false
	}
}

// feedByte assembles UTF-8 sequences across Feed boundaries.
func (p *Prompt) feedByte(b byte) {
	p.pending = append(p.pending, b)
	if !utf8.FullRune(p.pending) {
		if len(p.pending) >= utf8.UTFMax {
			p.pending = p.pending[:0]
		}
		return
	}
	r, _ := utf8.DecodeRune(p.pending)
	if r != utf8.RuneError {
		p.buf = append(p.buf, r)
	}
	p.pending = p.pending[:0]
}

// Take returns the submitted command and resets the prompt for reuse.
func (p *Prompt) Take() string {
	cmd := p.submitted
	p.submitted = ""
	p.buf = p.buf[:0]
	p.pending = p.pending[:0]
	return cmd
}

// Line returns the rendered prompt line.
func (p *Prompt) Line() string {
	var b strings.Builder
	b.WriteString(p.prefix)
	b.WriteString(string(p.buf))
	return b.String()
}

// Len returns the number of runes in the input buffer.
func (p *Prompt) Len() int {
	return len(p.buf)
}
