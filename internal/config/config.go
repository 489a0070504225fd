// ABOUTME: Settings loading with global + local JSON deep merge
// ABOUTME: Non-zero local values override global; both override built-in defaults

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// HeightMatch values for Settings.HeightMatch.
const (
	HeightMatchInfo = "info" // art height tracks the info panel line count
	HeightMatchOff  = "off"  // art height derives from terminal rows
)

// Settings holds the merged configuration.
type Settings struct {
	// Art is the logical art name or path to animate.
	Art string `json:"art,omitempty"`

	// InfoCommand produces the info panel; empty selects the builtin
	// collector. InfoJSON switches to structured output parsing.
	InfoCommand string   `json:"info_command,omitempty"`
	InfoArgs    []string `json:"info_args,omitempty"`
	InfoJSON    bool     `json:"info_json,omitempty"`

	// Animation timing and gradient. Scrolling is on by default;
	// NoScroll freezes the gradient in place.
	FPS         float64  `json:"fps,omitempty"`
	NoScroll    bool     `json:"no_scroll,omitempty"`
	ScrollSpeed float64  `json:"scroll_speed,omitempty"`
	Gradient    []string `json:"gradient,omitempty"`
	BrandColor  string   `json:"brand_color,omitempty"`
	NoColor     bool     `json:"no_color,omitempty"`

	// Layout constraints.
	MinArtWidth  int    `json:"min_art_width,omitempty"`
	MinArtHeight int    `json:"min_art_height,omitempty"`
	HeightMatch  string `json:"height_match,omitempty"`

	// FPSExplicit and ScrollSpeedExplicit record that the value came
	// from an environment or CLI override; art frontmatter defers to
	// explicit overrides but beats file config.
	FPSExplicit         bool `json:"-"`
	ScrollSpeedExplicit bool `json:"-"`

	// Prompt is the string rendered before the input buffer.
	Prompt string `json:"prompt,omitempty"`

	// Env entries are exported before running the info command or the
	// submitted shell command.
	Env map[string]string `json:"env,omitempty"`
}

// Defaults returns the built-in settings.
func Defaults() *Settings {
	return &Settings{
		Art:          "tux",
		InfoCommand:  "fastfetch",
		InfoArgs:     []string{"--logo", "none"},
		FPS:          20,
		ScrollSpeed:  2,
		BrandColor:   "",
		MinArtWidth:  10,
		MinArtHeight: 5,
		HeightMatch:  HeightMatchInfo,
		Prompt:       "> ",
	}
}

// Load reads and merges defaults, global and local settings, then
// applies environment expansion and overrides. Local values win.
func Load(dir string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	local, err := loadFile(LocalConfigFile(dir))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading local config: %w", err)
	}

	merged := merge(merge(Defaults(), global), local)
	ResolveEnvVars(merged)
	ApplyEnvOverrides(merged)
	return merged, nil
}

// loadFile reads a Settings from a JSON file. Returns zero Settings if
// the file does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge deep-merges overlay settings onto base. Non-zero overlay
// values override base values.
func merge(base, overlay *Settings) *Settings {
	if base == nil {
		base = &Settings{}
	}
	if overlay == nil {
		return base
	}

	result := *base

	if overlay.Art != "" {
		result.Art = overlay.Art
	}
	if overlay.InfoCommand != "" {
		result.InfoCommand = overlay.InfoCommand
	}
	if overlay.InfoArgs != nil {
		result.InfoArgs = overlay.InfoArgs
	}
	if overlay.InfoJSON {
		result.InfoJSON = true
	}
	if overlay.FPS != 0 {
		result.FPS = overlay.FPS
	}
	if overlay.NoScroll {
		result.NoScroll = true
	}
	if overlay.ScrollSpeed != 0 {
		result.ScrollSpeed = overlay.ScrollSpeed
	}
	if overlay.Gradient != nil {
		result.Gradient = overlay.Gradient
	}
	if overlay.BrandColor != "" {
		result.BrandColor = overlay.BrandColor
	}
	if overlay.NoColor {
		result.NoColor = true
	}
	if overlay.MinArtWidth != 0 {
		result.MinArtWidth = overlay.MinArtWidth
	}
	if overlay.MinArtHeight != 0 {
		result.MinArtHeight = overlay.MinArtHeight
	}
	if overlay.HeightMatch != "" {
		result.HeightMatch = overlay.HeightMatch
	}
	if overlay.Prompt != "" {
		result.Prompt = overlay.Prompt
	}

	if len(overlay.Env) > 0 {
		if result.Env == nil {
			result.Env = make(map[string]string)
		}
		for k, v := range overlay.Env {
			result.Env[k] = v
		}
	}

	return &result
}
