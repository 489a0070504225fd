// ABOUTME: Non-blocking stdin poll for the frame loop on unix
// ABOUTME: Relies on raw mode VMIN=0/VTIME=0 so read returns immediately

//go:build unix

package app

import (
	"os"

	"golang.org/x/sys/unix"
)

// stdinPoller returns a closure that drains pending stdin bytes. With
// VMIN=0/VTIME=0 active the read returns 0 immediately when no input
// is pending.
func stdinPoller() func() []byte {
	fd := int(os.Stdin.Fd())
	buf := make([]byte, 128)
	return func() []byte {
		n, err := unix.Read(fd, buf)
		if err != nil || n <= 0 {
			return nil
		}
		out := make([]byte, n)
		copy(out, buf[:n])
		return out
	}
}
