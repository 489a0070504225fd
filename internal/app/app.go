// ABOUTME: The main frame loop: ticks, polls input and resizes, composes and writes frames
// ABOUTME: Owns terminal lifecycle; exits by handing the terminal to the submitted command

package app

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mauromedda/splashfetch-go/internal/art"
	"github.com/mauromedda/splashfetch-go/internal/config"
	"github.com/mauromedda/splashfetch-go/internal/log"
	"github.com/mauromedda/splashfetch-go/internal/prompt"
	"github.com/mauromedda/splashfetch-go/internal/render"
	"github.com/mauromedda/splashfetch-go/internal/shell"
	"github.com/mauromedda/splashfetch-go/pkg/tui/terminal"
	"github.com/mauromedda/splashfetch-go/pkg/tui/width"
)

// clearScreen moves home and erases the display; each frame is a
// single Write of this prefix plus the composed buffer.
const clearScreen = "\x1b[2J\x1b[H"

// Exit codes for signal-driven teardown, matching shell conventions.
const (
	exitInterrupt = 130
	exitTerminate = 143
)

// Options are the runtime switches not carried by Settings.
type Options struct {
	// Once renders a single frame and exits without raw mode.
	Once bool

	// NoAnim keeps the interactive loop on frame zero.
	NoAnim bool
}

// App drives one greeter session: animation, info panel, prompt.
type App struct {
	term   terminal.Terminal
	cache  *render.FrameCache
	prompt *prompt.Prompt

	info      []string // raw collected lines
	infoView  []string // truncated to the active layout
	layout    render.Layout
	layoutCfg render.LayoutConfig

	aspectW int
	aspectH int

	env      map[string]string
	interval time.Duration
	opts     Options

	// poll reads pending input bytes without blocking; nil result
	// means no input. Swapped out in tests.
	poll func() []byte
}

// New assembles an App from the merged settings, the loaded animation,
// and the collected info lines. Art frontmatter overrides the matching
// settings fields.
func New(cfg *config.Settings, anim *art.Animation, info []string, term terminal.Terminal, opts Options) (*App, error) {
	colorizer, fps, err := buildColorizer(cfg, anim.Meta)
	if err != nil {
		return nil, err
	}

	a := &App{
		term:   term,
		cache:  render.NewFrameCache(anim.Frames, colorizer),
		prompt: prompt.New(cfg.Prompt),
		info:   info,
		layoutCfg: render.LayoutConfig{
			MinArtWidth:     cfg.MinArtWidth,
			MinArtHeight:    cfg.MinArtHeight,
			MatchInfoHeight: cfg.HeightMatch != config.HeightMatchOff,
		},
		aspectW:  anim.Frames[0].Width(),
		aspectH:  anim.Frames[0].Height(),
		env:      cfg.Env,
		interval: time.Duration(float64(time.Second) / fps),
		opts:     opts,
		poll:     stdinPoller(),
	}
	return a, nil
}

// Run executes the session and returns the process exit code. The
// error return covers setup failures only; once the loop is running,
// every outcome is an exit code.
func (a *App) Run(ctx context.Context) (int, error) {
	if a.opts.Once {
		a.applySize()
		frame := a.cache.Frame(0)
		buf := render.Compose(frame, a.infoView, "")
		_, err := a.term.Write([]byte(strings.ReplaceAll(buf, "\r\n", "\n")))
		if err != nil {
			return 1, err
		}
		return 0, nil
	}

	if err := a.term.EnterRaw(); err != nil {
		return 1, err
	}
	defer a.term.Restore()

	monitor := terminal.NewResizeMonitor()
	defer monitor.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	a.applySize()
	a.draw(0)

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case sig := <-sigCh:
			a.term.Restore()
			if sig == syscall.SIGTERM {
				return exitTerminate, nil
			}
			return exitInterrupt, nil

		case <-ctx.Done():
			a.term.Restore()
			return 0, nil

		case <-ticker.C:
		}

		if monitor.CheckAndClear() {
			a.applySize()
		}

		switch a.prompt.Feed(a.poll()) {
		case prompt.ActionInterrupt:
			a.term.Restore()
			_, _ = a.term.Write([]byte("\r\n"))
			return exitInterrupt, nil

		case prompt.ActionEOF:
			a.term.Restore()
			_, _ = a.term.Write([]byte("\r\n"))
			return 0, nil

		case prompt.ActionSubmit:
			command := strings.TrimSpace(a.prompt.Take())
			a.term.Restore()
			_, _ = a.term.Write([]byte(clearScreen))
			if command == "" {
				return 0, nil
			}
			log.Debug("running command: %s", command)
			return shell.Run(command, a.env), nil
		}

		if !a.opts.NoAnim {
			frame++
		}
		a.draw(frame)
	}
}

// applySize re-derives the layout from the current terminal size and
// rebuilds the truncated info view. Called at startup and after every
// observed resize.
func (a *App) applySize() {
	cols, rows := terminal.SizeOrDefault(a.term)
	a.layout = render.ComputeLayout(
		render.TerminalSize{Columns: cols, Rows: rows},
		a.layoutCfg, a.aspectW, a.aspectH, len(a.info),
	)
	a.cache.Resize(a.layout.ArtWidth, a.layout.ArtHeight)

	a.infoView = make([]string, len(a.info))
	for i, line := range a.info {
		a.infoView[i] = width.Truncate(line, a.layout.InfoWidth)
	}
}

// draw composes and writes one frame as a single terminal write.
func (a *App) draw(frame int) {
	buf := render.Compose(a.cache.Frame(frame), a.infoView, a.prompt.Line())
	if _, err := a.term.Write([]byte(clearScreen + buf)); err != nil {
		log.Warn("writing frame: %v", err)
	}
}
