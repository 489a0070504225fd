// ABOUTME: Terminal color type and resolution from config strings to ANSI codes
// ABOUTME: Accepts named colors, 256-palette indexes, and #RRGGBB true color

package theme

import (
	"fmt"
	"strconv"
	"strings"
)

// Reset is the SGR sequence that clears all color state.
const Reset = "\x1b[0m"

// Color represents a terminal foreground color as a raw ANSI code.
type Color struct {
	code string
}

// NewColor creates a Color from a raw ANSI escape code.
func NewColor(code string) Color {
	return Color{code: code}
}

// Code returns the raw ANSI escape code.
func (c Color) Code() string {
	return c.code
}

// IsZero reports whether the color carries no escape code.
func (c Color) IsZero() bool {
	return c.code == ""
}

// named maps color names to their 16-color SGR foreground parameters.
var named = map[string]int{
	"black":   30,
	"red":     31,
	"green":   32,
	"yellow":  33,
	"blue":    34,
	"magenta": 35,
	"cyan":    36,
	"white":   37,

	"bright-black":   90,
	"bright-red":     91,
	"bright-green":   92,
	"bright-yellow":  93,
	"bright-blue":    94,
	"bright-magenta": 95,
	"bright-cyan":    96,
	"bright-white":   97,
}

// Resolve turns a color specification into a Color. Accepted forms:
// a color name ("cyan", "bright-magenta"), a 256-palette index
// ("208"), or a hex true color ("#5fd7ff"). The empty string resolves
// to the zero Color.
func Resolve(spec string) (Color, error) {
	spec = strings.TrimSpace(strings.ToLower(spec))
	if spec == "" {
		return Color{}, nil
	}

	if p, ok := named[spec]; ok {
		return Color{code: fmt.Sprintf("\x1b[%dm", p)}, nil
	}

	if strings.HasPrefix(spec, "#") {
		r, g, b, err := parseHex(spec)
		if err != nil {
			return Color{}, err
		}
		return Color{code: fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)}, nil
	}

	if idx, err := strconv.Atoi(spec); err == nil {
		if idx < 0 || idx > 255 {
			return Color{}, fmt.Errorf("color index %d out of range 0-255", idx)
		}
		return Color{code: fmt.Sprintf("\x1b[38;5;%dm", idx)}, nil
	}

	return Color{}, fmt.Errorf("unknown color %q", spec)
}

// ResolvePalette resolves an ordered list of color specs, rejecting
// entries that resolve to the zero Color: a gradient stop must paint.
func ResolvePalette(specs []string) ([]Color, error) {
	colors := make([]Color, 0, len(specs))
	for _, s := range specs {
		c, err := Resolve(s)
		if err != nil {
			return nil, fmt.Errorf("palette entry %q: %w", s, err)
		}
		if c.IsZero() {
			return nil, fmt.Errorf("palette entry %q resolves to no color", s)
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// parseHex decodes #RGB or #RRGGBB.
func parseHex(spec string) (r, g, b int, err error) {
	h := spec[1:]
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6:
	default:
		return 0, 0, 0, fmt.Errorf("hex color %q must be #RGB or #RRGGBB", spec)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("hex color %q: %w", spec, err)
	}
	return int(v >> 16), int(v >> 8 & 0xff), int(v & 0xff), nil
}

// DefaultGradient is the palette used when the config names none: a
// cold-to-warm vertical ramp that reads well on dark terminals.
func DefaultGradient() []Color {
	return []Color{
		NewColor("\x1b[38;5;51m"),
		NewColor("\x1b[38;5;45m"),
		NewColor("\x1b[38;5;39m"),
		NewColor("\x1b[38;5;33m"),
		NewColor("\x1b[38;5;63m"),
		NewColor("\x1b[38;5;99m"),
		NewColor("\x1b[38;5;135m"),
	}
}

// DefaultBrand is the highlight color applied to marked art spans.
func DefaultBrand() Color {
	return NewColor("\x1b[38;5;208m")
}
