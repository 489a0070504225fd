// ABOUTME: ProcessTerminal implements Terminal on os.Stdin/os.Stdout via golang.org/x/term
// ABOUTME: Raw mode is tweaked to VMIN=0/VTIME=0; Restore is idempotent and signal-safe

package terminal

import (
	"fmt"
	"os"
	"sync/atomic"

	"golang.org/x/term"
)

// ProcessTerminal is the real terminal backed by os.Stdin and os.Stdout.
// Exactly one instance should own the tty at a time.
type ProcessTerminal struct {
	saved  *term.State
	active atomic.Bool
}

// NewProcessTerminal returns a ProcessTerminal ready for use.
func NewProcessTerminal() *ProcessTerminal {
	return &ProcessTerminal{}
}

// EnterRaw saves the current attributes, disables echo and line
// buffering, and configures reads to return immediately when no bytes
// are pending.
func (t *ProcessTerminal) EnterRaw() error {
	state, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.saved = state
	if err := setPollingRead(int(os.Stdin.Fd())); err != nil {
		_ = term.Restore(int(os.Stdin.Fd()), state)
		return fmt.Errorf("configuring non-blocking reads: %w", err)
	}
	t.active.Store(true)
	return nil
}

// Restore reinstates the saved attributes exactly once. Further calls
// are no-ops. The restore syscall's error is ignored: when stdin is
// already gone there is nothing more we can do.
func (t *ProcessTerminal) Restore() {
	if !t.active.Swap(false) {
		return
	}
	_ = term.Restore(int(os.Stdin.Fd()), t.saved)
}

// Size returns the current terminal dimensions.
func (t *ProcessTerminal) Size() (columns, rows int, err error) {
	c, r, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return c, r, nil
}

// Write sends bytes to os.Stdout.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := os.Stdout.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to stdout: %w", err)
	}
	return n, nil
}
