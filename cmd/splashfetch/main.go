// ABOUTME: CLI entry point for splashfetch with terminal crash recovery
// ABOUTME: Parses flags, loads config, loads art and info in parallel, runs the frame loop

package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/splashfetch-go/internal/app"
	"github.com/mauromedda/splashfetch-go/internal/art"
	"github.com/mauromedda/splashfetch-go/internal/config"
	"github.com/mauromedda/splashfetch-go/internal/log"
	"github.com/mauromedda/splashfetch-go/internal/sysinfo"
	"github.com/mauromedda/splashfetch-go/pkg/tui/terminal"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("splashfetch %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if args.verbose {
		log.SetLevel(log.LevelDebug)
	}

	code, err := run(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(code)
}

func run(args cliArgs) (int, error) {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return 1, err
	}
	applyFlagOverrides(cfg, args)

	if args.list {
		for _, name := range art.List() {
			fmt.Println(name)
		}
		return 0, nil
	}

	path, err := art.Resolve(cfg.Art)
	if err != nil {
		return 1, err
	}
	log.Debug("using art file %s", path)

	// Art decoding and info collection are independent; run them in
	// parallel so a slow info program does not delay the first frame.
	ctx := context.Background()
	g, gctx := errgroup.WithContext(ctx)

	var anim *art.Animation
	g.Go(func() error {
		var err error
		anim, err = art.Load(path)
		return err
	})

	var info []string
	g.Go(func() error {
		info = sysinfo.Collect(gctx, sysinfo.Options{
			Command: cfg.InfoCommand,
			Args:    cfg.InfoArgs,
			JSON:    cfg.InfoJSON,
			Env:     cfg.Env,
			NoColor: cfg.NoColor,
		})
		return nil
	})

	if err := g.Wait(); err != nil {
		return 1, err
	}

	term := terminal.NewProcessTerminal()
	defer terminal.RestoreOnPanic(term)

	a, err := app.New(cfg, anim, info, term, app.Options{
		Once:   args.once,
		NoAnim: args.noAnim,
	})
	if err != nil {
		return 1, err
	}
	return a.Run(ctx)
}

// applyFlagOverrides lets CLI flags beat file and environment config.
func applyFlagOverrides(cfg *config.Settings, args cliArgs) {
	if args.art != "" {
		cfg.Art = args.art
	}
	if args.fps > 0 {
		cfg.FPS = args.fps
		cfg.FPSExplicit = true
	}
	if args.noColor {
		cfg.NoColor = true
	}
}
