// ABOUTME: Lazy frame cache: memoizes scaled+colorized frames per dimension epoch
// ABOUTME: Resize drops every entry at once; entries rebuild lazily on next access

package render

import (
	"github.com/mauromedda/splashfetch-go/internal/art"
	"github.com/mauromedda/splashfetch-go/pkg/tui/width"
)

// Rendered is one fully rendered frame: colorized lines plus the
// visible width of the widest line, which the compositor aligns on.
type Rendered struct {
	Lines []string
	Width int
}

// FrameCache owns one rendering per (frame index, active width, active
// height). A dimension change invalidates the scaling of every frame
// identically, so Resize discards the whole cache rather than single
// entries. Access is single-threaded by design: the main loop is the
// only mutator, so entries are memoized, never computed twice within
// one dimension epoch.
type FrameCache struct {
	frames    []*art.Frame
	colorizer *Colorizer

	artWidth  int
	artHeight int
	entries   map[int]*Rendered
}

// NewFrameCache creates a cache over the raw frames. The frame count
// is fixed from here on.
func NewFrameCache(frames []*art.Frame, colorizer *Colorizer) *FrameCache {
	return &FrameCache{
		frames:    frames,
		colorizer: colorizer,
		entries:   make(map[int]*Rendered),
	}
}

// FrameCount returns the fixed number of raw frames.
func (c *FrameCache) FrameCount() int {
	return len(c.frames)
}

// Resize updates the active dimensions. When they actually changed,
// every stored entry is dropped; a resize followed by zero frame
// requests costs nothing further.
func (c *FrameCache) Resize(artWidth, artHeight int) {
	if artWidth == c.artWidth && artHeight == c.artHeight {
		return
	}
	c.artWidth = artWidth
	c.artHeight = artHeight
	c.entries = make(map[int]*Rendered, len(c.frames))
}

// Frame returns the rendered frame for index, computing and storing it
// on first access within the current dimension epoch. The index wraps
// modulo the frame count. The returned value is shared and must be
// treated as read-only.
func (c *FrameCache) Frame(index int) *Rendered {
	if len(c.frames) == 0 {
		return &Rendered{}
	}
	index %= len(c.frames)

	if entry, ok := c.entries[index]; ok {
		return entry
	}

	scaled := Scale(c.frames[index], c.artWidth, c.artHeight)
	lines := c.colorizer.Render(scaled, index)

	widest := 0
	for _, l := range lines {
		if w := width.VisibleWidth(l); w > widest {
			widest = w
		}
	}
	entry := &Rendered{Lines: lines, Width: widest}
	c.entries[index] = entry
	return entry
}
