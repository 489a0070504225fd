// ABOUTME: Linux termios tweak: VMIN=0, VTIME=0 so raw-mode reads poll instead of block
// ABOUTME: Applied after term.MakeRaw, which leaves VMIN=1

package terminal

import "golang.org/x/sys/unix"

func setPollingRead(fd int) error {
	tio, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return err
	}
	tio.Cc[unix.VMIN] = 0
	tio.Cc[unix.VTIME] = 0
	return unix.IoctlSetTermios(fd, unix.TCSETS, tio)
}
