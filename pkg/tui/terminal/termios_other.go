// ABOUTME: Fallback for platforms without a termios tweak; reads stay blocking
// ABOUTME: The frame loop still works, input is just sampled on keypress cadence

//go:build !linux && !darwin

package terminal

func setPollingRead(fd int) error {
	return nil
}
