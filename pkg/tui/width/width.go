// ABOUTME: VisibleWidth counts display columns of a line, skipping ANSI color sequences
// ABOUTME: Counts one column per Unicode scalar; Truncate clips grapheme-aware to a column budget

package width

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// VisibleWidth returns the number of display columns s occupies in the
// art grid: ANSI CSI sequences contribute zero, every other decoded
// Unicode scalar contributes one. An escape sequence with no final byte
// before end of string is counted as ordinary content from the byte
// after the introducer onward.
func VisibleWidth(s string) int {
	if s == "" {
		return 0
	}
	if isPlainASCII(s) {
		return len(s)
	}
	w := 0
	i := 0
	for i < len(s) {
		if s[i] == esc && i+1 < len(s) && s[i+1] == '[' {
			end, ok := csiEnd(s, i)
			if ok {
				i = end
				continue
			}
			// Unterminated sequence: the remainder is plain content.
			i += 2
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		w++
		i += size
	}
	return w
}

// isPlainASCII reports whether s is printable ASCII with no escapes,
// allowing a single-pass byte count.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}

// DisplayWidth returns the terminal cell width of s, accounting for
// wide grapheme clusters (CJK, emoji). Unlike VisibleWidth it is meant
// for arbitrary info-panel text, not the ASCII art grid.
func DisplayWidth(s string) int {
	stripped := StripANSI(s)
	w := 0
	state := -1
	for len(stripped) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(stripped, state)
		w += clusterWidth(cluster)
		stripped = rest
		state = newState
	}
	return w
}

// Truncate clips s to at most maxCols display columns, never splitting
// a grapheme cluster or an escape sequence. ANSI sequences are passed
// through unmeasured; if content was clipped after a color was opened,
// a reset is appended so color state cannot leak past the line.
func Truncate(s string, maxCols int) string {
	if maxCols <= 0 {
		return ""
	}
	if isPlainASCII(s) && len(s) <= maxCols {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	cols := 0
	sawColor := false
	clipped := false
	i := 0
	for i < len(s) {
		if s[i] == esc && i+1 < len(s) && s[i+1] == '[' {
			end, ok := csiEnd(s, i)
			if !ok {
				break
			}
			b.WriteString(s[i:end])
			sawColor = true
			i = end
			continue
		}
		cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		cw := clusterWidth(cluster)
		if cols+cw > maxCols {
			clipped = true
			break
		}
		b.WriteString(cluster)
		cols += cw
		i += len(cluster)
	}
	if sawColor && clipped {
		b.WriteString("\x1b[0m")
	}
	return b.String()
}

// clusterWidth returns the cell width of one grapheme cluster, judged
// by its first rune.
func clusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}
