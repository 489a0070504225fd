// ABOUTME: Gradient colorizer: vertically banded palette mapping anchored to the art range
// ABOUTME: Scroll phase derives from the frame index; highlight spans override the ambient color

package render

import (
	"strings"

	"github.com/mauromedda/splashfetch-go/internal/art"
	"github.com/mauromedda/splashfetch-go/pkg/tui/theme"
)

// ArtRange is the contiguous vertical span of a frame holding visible
// glyphs. Gradients map only within this span.
type ArtRange struct {
	Start      int
	End        int
	Height     int
	HasContent bool
}

// Range computes the ArtRange of a frame. A fully blank frame yields
// HasContent=false, which disables the gradient for that frame.
func Range(f *art.Frame) ArtRange {
	start, end := -1, -1
	for i, l := range f.Lines {
		if l.Blank() {
			continue
		}
		if start < 0 {
			start = i
		}
		end = i
	}
	if start < 0 {
		return ArtRange{}
	}
	return ArtRange{Start: start, End: end, Height: end - start + 1, HasContent: true}
}

// Gradient is a resolved color palette plus its animation parameters.
// Immutable after construction.
type Gradient struct {
	Palette     []theme.Color
	Scroll      bool
	ScrollSpeed float64
	FPS         float64
}

// scrollStep returns the number of bands the gradient has scrolled by
// frameIdx. With height <= 1 the modulo collapses to zero, so
// single-row art never cycles; that quirk is kept deliberately.
func (g *Gradient) scrollStep(frameIdx, height int) int {
	if !g.Scroll || height <= 0 || g.FPS <= 0 {
		return 0
	}
	return int(float64(frameIdx)/g.FPS*g.ScrollSpeed) % height
}

// ColorAt returns the palette color for a line of a frame, or false
// when the line lies outside the art range.
func (g *Gradient) ColorAt(lineIdx, frameIdx int, r ArtRange) (theme.Color, bool) {
	if !r.HasContent || len(g.Palette) == 0 || lineIdx < r.Start || lineIdx > r.End {
		return theme.Color{}, false
	}
	if len(g.Palette) == 1 || r.Height <= 1 {
		return g.Palette[0], true
	}
	step := g.scrollStep(frameIdx, r.Height)
	relative := (lineIdx - r.Start + r.Height - step) % r.Height
	idx := relative * (len(g.Palette) - 1) / (r.Height - 1)
	if idx >= len(g.Palette) {
		idx = len(g.Palette) - 1
	}
	return g.Palette[idx], true
}

// Colorizer rewrites scaled frame lines into terminal-ready strings.
// With a gradient, each line takes its band color; without one, a flat
// brand color covers lines that carry no highlight markup. Highlight
// spans always take the brand color and restore the ambient color
// right after. Every line that opens a color closes it before the
// line ends.
type Colorizer struct {
	Gradient *Gradient   // nil when no gradient is configured
	Brand    theme.Color // highlight and flat color
	NoColor  bool        // strip all coloring (NO_COLOR)
}

// Render colorizes every line of a scaled frame for the given frame
// index.
func (c *Colorizer) Render(f *art.Frame, frameIdx int) []string {
	r := Range(f)
	out := make([]string, len(f.Lines))
	for i, line := range f.Lines {
		out[i] = c.renderLine(line, i, frameIdx, r)
	}
	return out
}

func (c *Colorizer) renderLine(line art.Line, lineIdx, frameIdx int, r ArtRange) string {
	if c.NoColor {
		return string(line.Runes)
	}

	ambient := theme.Color{}
	if c.Gradient != nil {
		if col, ok := c.Gradient.ColorAt(lineIdx, frameIdx, r); ok {
			ambient = col
		}
	} else if !c.Brand.IsZero() && !hasHighlight(line) && !line.Blank() {
		ambient = c.Brand
	}

	var b strings.Builder
	opened := false
	if !ambient.IsZero() {
		b.WriteString(ambient.Code())
		opened = true
	}

	inSpan := false
	for i, ru := range line.Runes {
		hl := line.Highlight[i] && !c.Brand.IsZero()
		if hl && !inSpan {
			b.WriteString(c.Brand.Code())
			opened = true
			inSpan = true
		} else if !hl && inSpan {
			b.WriteString(theme.Reset)
			if !ambient.IsZero() {
				b.WriteString(ambient.Code())
			}
			inSpan = false
		}
		b.WriteRune(ru)
	}

	if opened {
		b.WriteString(theme.Reset)
	}
	return b.String()
}

func hasHighlight(line art.Line) bool {
	for _, h := range line.Highlight {
		if h {
			return true
		}
	}
	return false
}
