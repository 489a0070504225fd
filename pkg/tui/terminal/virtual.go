// ABOUTME: VirtualTerminal is an in-memory Terminal for tests
// ABOUTME: Captures written bytes and serves a settable size, optionally failing queries

package terminal

import "bytes"

// VirtualTerminal implements Terminal without touching a tty.
type VirtualTerminal struct {
	Columns  int
	Rows     int
	FailSize bool

	buf      bytes.Buffer
	raw      bool
	restores int
}

// NewVirtualTerminal returns a VirtualTerminal with the given size.
func NewVirtualTerminal(columns, rows int) *VirtualTerminal {
	return &VirtualTerminal{Columns: columns, Rows: rows}
}

func (t *VirtualTerminal) EnterRaw() error {
	t.raw = true
	return nil
}

func (t *VirtualTerminal) Restore() {
	if !t.raw {
		return
	}
	t.raw = false
	t.restores++
}

func (t *VirtualTerminal) Size() (int, int, error) {
	if t.FailSize {
		return 0, 0, errSizeUnavailable
	}
	return t.Columns, t.Rows, nil
}

func (t *VirtualTerminal) Write(p []byte) (int, error) {
	return t.buf.Write(p)
}

// Output returns everything written so far.
func (t *VirtualTerminal) Output() string { return t.buf.String() }

// Raw reports whether the terminal is currently in raw mode.
func (t *VirtualTerminal) Raw() bool { return t.raw }

// Restores returns how many times Restore actually ran.
func (t *VirtualTerminal) Restores() int { return t.restores }

type sizeError string

func (e sizeError) Error() string { return string(e) }

const errSizeUnavailable = sizeError("size unavailable")
