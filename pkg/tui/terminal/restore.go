// ABOUTME: RestoreOnPanic recovers from panics, restores the terminal, and prints the stack
// ABOUTME: Intended as a deferred call in the main goroutine while raw mode is active

package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
)

// RestoreOnPanic should be deferred at the top of main once raw mode
// may be active. On panic it shows the cursor, restores cooked mode,
// prints the panic value and stack trace, then exits with code 1.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	_, _ = os.Stdout.Write([]byte("\033[?25h")) // show cursor
	t.Restore()

	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}
