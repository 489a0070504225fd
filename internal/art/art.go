// ABOUTME: Raw art frame model: rune grid plus a parallel highlight mask
// ABOUTME: Parses inline <span class="b">…</span> markup into the mask at load time

package art

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Line is one row of an art frame. Runes holds the visible glyphs;
// Highlight marks the columns enclosed by highlight markup, which
// always take the brand color regardless of the ambient gradient.
type Line struct {
	Runes     []rune
	Highlight []bool
}

// Blank reports whether the line contains no visible glyph.
func (l Line) Blank() bool {
	for _, r := range l.Runes {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Frame is an immutable parsed art frame.
type Frame struct {
	Lines []Line
}

// Height returns the number of lines in the frame.
func (f *Frame) Height() int {
	return len(f.Lines)
}

// Width returns the widest line of the frame in glyph columns.
func (f *Frame) Width() int {
	w := 0
	for _, l := range f.Lines {
		if len(l.Runes) > w {
			w = len(l.Runes)
		}
	}
	return w
}

const (
	spanOpenDouble = `<span class="b">`
	spanOpenSingle = `<span class='b'>`
	spanClose      = `</span>`
)

// ParseLine decodes one raw art line, stripping highlight markup into
// the mask. Unbalanced markup is tolerated: an unclosed span
// highlights through end of line, a stray close tag is dropped.
func ParseLine(s string) Line {
	if !strings.Contains(s, "<span") && !strings.Contains(s, spanClose) {
		runes := []rune(s)
		return Line{Runes: runes, Highlight: make([]bool, len(runes))}
	}

	var runes []rune
	var mask []bool
	hl := false
	for len(s) > 0 {
		switch {
		case strings.HasPrefix(s, spanOpenDouble):
			hl = true
			s = s[len(spanOpenDouble):]
		case strings.HasPrefix(s, spanOpenSingle):
			hl = true
			s = s[len(spanOpenSingle):]
		case strings.HasPrefix(s, spanClose):
			hl = false
			s = s[len(spanClose):]
		default:
			r, size := utf8.DecodeRuneInString(s)
			runes = append(runes, r)
			mask = append(mask, hl)
			s = s[size:]
		}
	}
	return Line{Runes: runes, Highlight: mask}
}

// ParseFrame decodes a block of raw lines into a Frame.
func ParseFrame(lines []string) *Frame {
	f := &Frame{Lines: make([]Line, 0, len(lines))}
	for _, l := range lines {
		f.Lines = append(f.Lines, ParseLine(l))
	}
	return f
}
