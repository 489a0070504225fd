// ABOUTME: Terminal abstraction: raw mode, size queries, and output writing
// ABOUTME: Implemented by ProcessTerminal (real tty) and VirtualTerminal (tests)

package terminal

// Default dimensions used when the size query fails, e.g. when output
// is redirected to a file.
const (
	DefaultColumns = 120
	DefaultRows    = 40
)

// Terminal abstracts the tty operations the frame loop needs.
type Terminal interface {
	// EnterRaw switches the terminal to raw mode with non-blocking
	// reads (VMIN=0, VTIME=0) so input polling never stalls a frame.
	EnterRaw() error

	// Restore puts the terminal back into its saved state. It is
	// idempotent and best-effort: calls after the first are no-ops and
	// a failing restore syscall is swallowed, so it is safe to call on
	// every exit path including signal-driven ones.
	Restore()

	// Size returns the current terminal dimensions.
	Size() (columns, rows int, err error)

	Write(p []byte) (n int, err error)
}

// SizeOrDefault queries t's dimensions, substituting DefaultColumns x
// DefaultRows when the query fails. Detection failure is never fatal.
func SizeOrDefault(t Terminal) (columns, rows int) {
	c, r, err := t.Size()
	if err != nil || c <= 0 || r <= 0 {
		return DefaultColumns, DefaultRows
	}
	return c, r
}
