// ABOUTME: Frame scaler: nearest-neighbor sampling on the character grid
// ABOUTME: Enlarging repeats glyphs, shrinking drops them; highlight spans survive sampling

package render

import "github.com/mauromedda/splashfetch-go/internal/art"

// Scale maps src onto targetW x targetH. Output row r samples source
// row floor(r*srcH/targetH); columns likewise, against the frame-wide
// grid width. A sampled column beyond a ragged line's end yields a
// space. Zero target dimensions yield an empty frame without error.
func Scale(src *art.Frame, targetW, targetH int) *art.Frame {
	srcH := src.Height()
	srcW := src.Width()
	if targetW <= 0 || targetH <= 0 || srcW == 0 || srcH == 0 {
		return &art.Frame{}
	}

	out := &art.Frame{Lines: make([]art.Line, targetH)}
	for r := 0; r < targetH; r++ {
		srcLine := src.Lines[r*srcH/targetH]
		runes := make([]rune, targetW)
		mask := make([]bool, targetW)
		for c := 0; c < targetW; c++ {
			sc := c * srcW / targetW
			if sc < len(srcLine.Runes) {
				runes[c] = srcLine.Runes[sc]
				mask[c] = srcLine.Highlight[sc]
			} else {
				runes[c] = ' '
			}
		}
		out.Lines[r] = art.Line{Runes: runes, Highlight: mask}
	}
	return out
}
