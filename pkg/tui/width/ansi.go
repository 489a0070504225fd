// ABOUTME: ANSI CSI sequence scanning and stripping for width measurement
// ABOUTME: csiEnd bounds a sequence without reading past end of string

package width

import "strings"

const esc = '\x1b'

// csiEnd returns the index just past the CSI sequence starting at s[i]
// (which must be ESC followed by '['). The second result is false when
// no final byte (0x40-0x7E) exists before end of string.
func csiEnd(s string, i int) (int, bool) {
	j := i + 2 // skip ESC [
	for j < len(s) {
		b := s[j]
		if b >= 0x40 && b <= 0x7E {
			return j + 1, true
		}
		j++
	}
	return j, false
}

// StripANSI removes all CSI sequences from s. Unterminated sequences
// lose only their two-byte introducer, matching VisibleWidth.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, esc) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		if s[i] == esc && i+1 < len(s) && s[i+1] == '[' {
			end, ok := csiEnd(s, i)
			if ok {
				i = end
				continue
			}
			i += 2
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}
