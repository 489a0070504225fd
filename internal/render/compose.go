// ABOUTME: Compositor: merges art frame, info panel, and prompt into one screen buffer
// ABOUTME: Info lines column-align via CHA just right of the widest art line

package render

import (
	"fmt"
	"strings"
)

// Compose builds the full-screen buffer for one tick. Each row holds
// the art line (if any), an absolute cursor-column move to the info
// start column, and the info line (if any). Rows end in CRLF because
// the terminal is in raw mode. The prompt is appended last with no
// trailing newline. The info column sits one gutter right of the
// widest art line.
func Compose(frame *Rendered, info []string, prompt string) string {
	infoCol := frame.Width + Gutter

	var b strings.Builder
	rows := len(frame.Lines)
	if len(info) > rows {
		rows = len(info)
	}

	for i := 0; i < rows; i++ {
		if i < len(frame.Lines) {
			b.WriteString(frame.Lines[i])
		}
		if i < len(info) && info[i] != "" {
			fmt.Fprintf(&b, "\x1b[%dG", infoCol)
			b.WriteString(info[i])
		}
		b.WriteString("\r\n")
	}

	b.WriteString(prompt)
	return b.String()
}
