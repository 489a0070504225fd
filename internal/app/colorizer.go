// ABOUTME: Builds the frame colorizer from merged settings and art frontmatter
// ABOUTME: Frontmatter wins over config; absent gradient config selects the default palette

package app

import (
	"fmt"

	"github.com/mauromedda/splashfetch-go/internal/art"
	"github.com/mauromedda/splashfetch-go/internal/config"
	"github.com/mauromedda/splashfetch-go/internal/render"
	"github.com/mauromedda/splashfetch-go/pkg/tui/theme"
)

const defaultFPS = 20

// buildColorizer merges color and timing settings with the art's
// frontmatter and resolves them into a render.Colorizer. It also
// returns the effective frame rate. An explicitly empty gradient list
// disables the gradient: the art paints flat in the brand color.
func buildColorizer(cfg *config.Settings, meta art.Meta) (*render.Colorizer, float64, error) {
	// Frontmatter beats file config but loses to an explicit
	// environment or CLI override.
	fps := cfg.FPS
	if meta.FPS > 0 && !cfg.FPSExplicit {
		fps = meta.FPS
	}
	if fps <= 0 {
		fps = defaultFPS
	}

	scrollSpeed := cfg.ScrollSpeed
	if meta.ScrollSpeed > 0 && !cfg.ScrollSpeedExplicit {
		scrollSpeed = meta.ScrollSpeed
	}
	scroll := !cfg.NoScroll && !meta.NoScroll

	brandSpec := cfg.BrandColor
	if meta.BrandColor != "" {
		brandSpec = meta.BrandColor
	}
	brand, err := theme.Resolve(brandSpec)
	if err != nil {
		return nil, 0, fmt.Errorf("brand color: %w", err)
	}
	if brand.IsZero() {
		brand = theme.DefaultBrand()
	}

	specs := cfg.Gradient
	if meta.Gradient != nil {
		specs = meta.Gradient
	}

	var palette []theme.Color
	switch {
	case specs == nil:
		palette = theme.DefaultGradient()
	case len(specs) == 0:
		palette = nil
	default:
		palette, err = theme.ResolvePalette(specs)
		if err != nil {
			return nil, 0, fmt.Errorf("gradient: %w", err)
		}
	}

	c := &render.Colorizer{Brand: brand, NoColor: cfg.NoColor}
	if len(palette) > 0 {
		c.Gradient = &render.Gradient{
			Palette:     palette,
			Scroll:      scroll,
			ScrollSpeed: scrollSpeed,
			FPS:         fps,
		}
	}
	return c, fps, nil
}
