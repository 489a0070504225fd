// ABOUTME: Art file loading: YAML frontmatter, %% frame separators, markup parsing
// ABOUTME: A missing or empty animation is a fatal startup error, not a degraded mode

package art

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Meta carries per-art defaults from the file's YAML frontmatter.
// Zero values defer to the global configuration.
type Meta struct {
	FPS         float64  `yaml:"fps"`
	ScrollSpeed float64  `yaml:"scroll_speed"`
	NoScroll    bool     `yaml:"no_scroll"`
	Gradient    []string `yaml:"gradient"`
	BrandColor  string   `yaml:"brand_color"`
}

// Animation is a loaded sequence of raw frames plus per-art metadata.
type Animation struct {
	Frames []*Frame
	Meta   Meta
}

// FrameCount returns the number of raw frames.
func (a *Animation) FrameCount() int {
	return len(a.Frames)
}

// frameSeparator delimits frames in a text art file: a line holding
// exactly this token.
const frameSeparator = "%%"

// Load reads an animation from path, dispatching on extension: image
// files go through the image converter, everything else is parsed as
// marked-up text.
func Load(path string) (*Animation, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gif", ".png", ".jpg", ".jpeg", ".webp":
		return LoadImage(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading art file: %w", err)
	}
	anim, err := ParseText(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return anim, nil
}

// ParseText parses marked-up art text: optional --- YAML frontmatter,
// then frames separated by %% lines.
func ParseText(content string) (*Animation, error) {
	meta, body, err := splitFrontmatter(content)
	if err != nil {
		return nil, err
	}

	var anim Animation
	anim.Meta = meta

	var current []string
	flush := func() {
		if len(current) > 0 {
			anim.Frames = append(anim.Frames, ParseFrame(current))
			current = nil
		}
	}
	for _, line := range strings.Split(body, "\n") {
		if strings.TrimRight(line, " \t") == frameSeparator {
			flush()
			continue
		}
		current = append(current, strings.TrimRight(line, "\r"))
	}
	flush()

	// A single trailing newline leaves one empty pseudo-line; frames
	// that are entirely empty lines at the tail are kept only if the
	// animation would otherwise vanish.
	anim.Frames = trimEmptyFrames(anim.Frames)

	if len(anim.Frames) == 0 {
		return nil, fmt.Errorf("no frames found")
	}
	return &anim, nil
}

const frontmatterDelimiter = "---"

// splitFrontmatter extracts YAML frontmatter delimited by --- lines.
// Without an opening delimiter the whole content is body.
func splitFrontmatter(content string) (Meta, string, error) {
	var meta Meta

	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(normalized, frontmatterDelimiter+"\n") {
		return meta, content, nil
	}

	rest := normalized[len(frontmatterDelimiter)+1:]
	yamlContent, after, ok := strings.Cut(rest, "\n"+frontmatterDelimiter)
	if !ok {
		return meta, "", fmt.Errorf("unterminated frontmatter: missing closing %s", frontmatterDelimiter)
	}
	body := strings.TrimPrefix(after, "\n")

	if err := yaml.Unmarshal([]byte(yamlContent), &meta); err != nil {
		return meta, "", fmt.Errorf("parse frontmatter YAML: %w", err)
	}
	return meta, body, nil
}

// trimEmptyFrames drops frames whose every line is empty, keeping at
// least one frame if any had content.
func trimEmptyFrames(frames []*Frame) []*Frame {
	kept := frames[:0]
	for _, f := range frames {
		empty := true
		for _, l := range f.Lines {
			if len(l.Runes) > 0 {
				empty = false
				break
			}
		}
		if !empty {
			kept = append(kept, f)
		}
	}
	return kept
}
