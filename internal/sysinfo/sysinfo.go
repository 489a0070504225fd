// ABOUTME: Collects the info panel lines from an external program, pty-backed
// ABOUTME: Falls back to a plain pipe, then to the builtin panel; collection is never fatal

package sysinfo

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/creack/pty"

	"github.com/mauromedda/splashfetch-go/internal/log"
)

// Options selects the info source.
type Options struct {
	// Command is the info program; empty selects the builtin panel.
	Command string
	Args    []string

	// JSON parses the program output as a structured document instead
	// of taking its lines verbatim.
	JSON bool

	// Env entries are appended to the child environment.
	Env map[string]string

	// NoColor disables styling of the builtin panel.
	NoColor bool
}

// Collect returns the ordered, pre-formatted info panel lines. Any
// failure degrades to the builtin panel; the animation never stalls on
// a broken info program.
func Collect(ctx context.Context, opts Options) []string {
	if opts.Command == "" {
		return Builtin(opts.NoColor)
	}
	if _, err := exec.LookPath(opts.Command); err != nil {
		log.Debug("info command %q not found, using builtin panel", opts.Command)
		return Builtin(opts.NoColor)
	}

	out, err := run(ctx, opts)
	if err != nil {
		log.Warn("info command failed: %v", err)
		return Builtin(opts.NoColor)
	}

	if opts.JSON {
		lines, err := ParseJSON(out)
		if err != nil {
			log.Warn("parsing info JSON: %v", err)
			return splitLines(out)
		}
		return lines
	}
	return splitLines(out)
}

// run executes the info program, preferring a pseudo-terminal so the
// program keeps emitting its colored output. When no pty is available
// (containers, exotic platforms) a plain pipe still works.
func run(ctx context.Context, opts Options) ([]byte, error) {
	cmd := exec.CommandContext(ctx, opts.Command, opts.Args...)
	cmd.Env = childEnv(opts.Env)

	f, err := pty.Start(cmd)
	if err != nil {
		log.Debug("pty unavailable (%v), falling back to pipe", err)
		return exec.CommandContext(ctx, opts.Command, opts.Args...).Output()
	}
	defer f.Close()

	var buf bytes.Buffer
	// Reading the master after the child exits returns EIO on Linux;
	// that is the normal end of stream here.
	if _, err := io.Copy(&buf, f); err != nil && buf.Len() == 0 {
		_ = cmd.Wait()
		return nil, err
	}
	if err := cmd.Wait(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func childEnv(extra map[string]string) []string {
	env := os.Environ()
	for k, v := range extra {
		env = append(env, k+"="+v)
	}
	return env
}

// splitLines turns raw program output into panel lines, normalizing
// pty CRLF and dropping trailing blank lines.
func splitLines(out []byte) []string {
	lines := strings.Split(string(out), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], "\r")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
