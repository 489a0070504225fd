// ABOUTME: Tests for the frame loop using a virtual terminal and scripted input
// ABOUTME: Covers once mode, exit paths, and colorizer construction

package app

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mauromedda/splashfetch-go/internal/art"
	"github.com/mauromedda/splashfetch-go/internal/config"
	"github.com/mauromedda/splashfetch-go/pkg/tui/terminal"
	"github.com/mauromedda/splashfetch-go/pkg/tui/theme"
)

func testAnimation(t *testing.T) *art.Animation {
	t.Helper()
	anim, err := art.ParseText("####\n####\n%%\n@@@@\n@@@@\n")
	if err != nil {
		t.Fatalf("ParseText: %v", err)
	}
	return anim
}

func testSettings() *config.Settings {
	cfg := config.Defaults()
	cfg.NoColor = true
	cfg.FPS = 200 // keep test loops fast
	return cfg
}

// scriptInput replaces the stdin poller with a fixed byte sequence,
// delivered one chunk per poll.
func scriptInput(a *App, chunks ...[]byte) {
	i := 0
	a.poll = func() []byte {
		if i >= len(chunks) {
			return nil
		}
		c := chunks[i]
		i++
		return c
	}
}

func newTestApp(t *testing.T, opts Options) (*App, *terminal.VirtualTerminal) {
	t.Helper()
	vt := terminal.NewVirtualTerminal(120, 40)
	a, err := New(testSettings(), testAnimation(t), []string{"OS: TestOS", "Host: box"}, vt, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a.term = vt
	scriptInput(a)
	return a, vt
}

func TestRun_Once(t *testing.T) {
	t.Parallel()

	a, vt := newTestApp(t, Options{Once: true})
	code, err := a.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if code != 0 {
		t.Errorf("code = %d, want 0", code)
	}
	if vt.Raw() {
		t.Error("once mode must not enter raw mode")
	}
	out := vt.Output()
	if !strings.Contains(out, "#") {
		t.Error("output missing art glyphs")
	}
	if !strings.Contains(out, "OS: TestOS") {
		t.Error("output missing info panel")
	}
	if strings.Contains(out, "\r\n") {
		t.Error("once mode must emit plain newlines")
	}
}

func TestRun_SubmitEmptyExitsZero(t *testing.T) {
	t.Parallel()

	a, vt := newTestApp(t, Options{})
	scriptInput(a, []byte{'\r'})

	code, err := a.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if code != 0 {
		t.Errorf("code = %d, want 0", code)
	}
	if vt.Restores() != 1 {
		t.Errorf("Restores = %d, want 1", vt.Restores())
	}
}

func TestRun_InterruptKey(t *testing.T) {
	t.Parallel()

	a, vt := newTestApp(t, Options{})
	scriptInput(a, []byte{0x03})

	code, err := a.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if code != exitInterrupt {
		t.Errorf("code = %d, want %d", code, exitInterrupt)
	}
	if vt.Raw() {
		t.Error("terminal left in raw mode")
	}
}

func TestRun_EOFKey(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t, Options{})
	scriptInput(a, []byte{0x04})

	code, err := a.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if code != 0 {
		t.Errorf("code = %d, want 0", code)
	}
}

func TestRun_ContextCancel(t *testing.T) {
	t.Parallel()

	a, vt := newTestApp(t, Options{})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	code, err := a.Run(ctx)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if code != 0 {
		t.Errorf("code = %d, want 0", code)
	}
	if vt.Raw() {
		t.Error("terminal left in raw mode")
	}
	if !strings.Contains(vt.Output(), "\x1b[2J\x1b[H") {
		t.Error("frames must start with clear+home")
	}
}

func TestRun_PromptEchoesTypedText(t *testing.T) {
	t.Parallel()

	a, vt := newTestApp(t, Options{})
	scriptInput(a, []byte("ls"), []byte{0x03})

	if _, err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(vt.Output(), "> ls") {
		t.Error("typed text missing from rendered prompt")
	}
}

func TestBuildColorizer_Defaults(t *testing.T) {
	t.Parallel()

	c, fps, err := buildColorizer(config.Defaults(), art.Meta{})
	if err != nil {
		t.Fatalf("buildColorizer: %v", err)
	}
	if fps != 20 {
		t.Errorf("fps = %v, want 20", fps)
	}
	if c.Gradient == nil {
		t.Fatal("default settings must select the default gradient")
	}
	if !c.Gradient.Scroll {
		t.Error("scrolling must be on by default")
	}
	if c.Brand.IsZero() {
		t.Error("brand must default to a paintable color")
	}
}

func TestBuildColorizer_MetaOverrides(t *testing.T) {
	t.Parallel()

	cfg := config.Defaults()
	meta := art.Meta{FPS: 5, NoScroll: true, Gradient: []string{"red", "blue"}, BrandColor: "cyan"}

	c, fps, err := buildColorizer(cfg, meta)
	if err != nil {
		t.Fatalf("buildColorizer: %v", err)
	}
	if fps != 5 {
		t.Errorf("fps = %v, want frontmatter value 5", fps)
	}
	if c.Gradient == nil || len(c.Gradient.Palette) != 2 {
		t.Fatal("frontmatter gradient not applied")
	}
	if c.Gradient.Scroll {
		t.Error("frontmatter no_scroll not applied")
	}
	want, _ := theme.Resolve("cyan")
	if c.Brand != want {
		t.Error("frontmatter brand color not applied")
	}
}

func TestBuildColorizer_ExplicitOverridesBeatFrontmatter(t *testing.T) {
	t.Parallel()

	cfg := config.Defaults()
	cfg.FPS = 60
	cfg.FPSExplicit = true
	cfg.ScrollSpeed = 9
	cfg.ScrollSpeedExplicit = true
	meta := art.Meta{FPS: 5, ScrollSpeed: 1}

	c, fps, err := buildColorizer(cfg, meta)
	if err != nil {
		t.Fatalf("buildColorizer: %v", err)
	}
	if fps != 60 {
		t.Errorf("fps = %v, want explicit override 60", fps)
	}
	if c.Gradient == nil {
		t.Fatal("default gradient expected")
	}
	if c.Gradient.ScrollSpeed != 9 {
		t.Errorf("scroll speed = %v, want explicit override 9", c.Gradient.ScrollSpeed)
	}
}

func TestBuildColorizer_EmptyGradientMeansFlatBrand(t *testing.T) {
	t.Parallel()

	cfg := config.Defaults()
	cfg.Gradient = []string{}

	c, _, err := buildColorizer(cfg, art.Meta{})
	if err != nil {
		t.Fatalf("buildColorizer: %v", err)
	}
	if c.Gradient != nil {
		t.Error("explicit empty gradient must disable the gradient")
	}
}

func TestBuildColorizer_BadColorFails(t *testing.T) {
	t.Parallel()

	cfg := config.Defaults()
	cfg.Gradient = []string{"no-such-color"}

	if _, _, err := buildColorizer(cfg, art.Meta{}); err == nil {
		t.Fatal("expected error for unknown gradient color")
	}
}
