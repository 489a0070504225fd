// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --art, --fps, --once, --no-anim, --no-color, --list, --verbose, --version

package main

import "flag"

type cliArgs struct {
	art     string
	fps     float64
	once    bool
	noAnim  bool
	noColor bool
	list    bool
	verbose bool
	version bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.StringVar(&args.art, "art", "", "Art name or path (overrides config)")
	flag.Float64Var(&args.fps, "fps", 0, "Animation frames per second (overrides config)")
	flag.BoolVar(&args.once, "once", false, "Render one frame and exit")
	flag.BoolVar(&args.noAnim, "no-anim", false, "Stay interactive but freeze on the first frame")
	flag.BoolVar(&args.noColor, "no-color", false, "Disable all color output")
	flag.BoolVar(&args.list, "list", false, "List available art names and exit")
	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging to stderr")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}
