// ABOUTME: SIGWINCH monitor exposing an edge-triggered resize flag
// ABOUTME: The signal goroutine only sets an atomic bool; the frame loop polls CheckAndClear

//go:build unix

package terminal

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
)

// ResizeMonitor records window-resize signals as a single boolean flag.
// The handler side does no work beyond setting the flag; the consumer
// polls and clears it once per loop iteration.
type ResizeMonitor struct {
	flag  atomic.Bool
	sigCh chan os.Signal
	done  chan struct{}
}

// NewResizeMonitor installs a SIGWINCH listener and starts the
// flag-setting goroutine.
func NewResizeMonitor() *ResizeMonitor {
	m := &ResizeMonitor{
		sigCh: make(chan os.Signal, 1),
		done:  make(chan struct{}),
	}
	signal.Notify(m.sigCh, syscall.SIGWINCH)
	go func() {
		for {
			select {
			case <-m.done:
				return
			case <-m.sigCh:
				m.flag.Store(true)
			}
		}
	}()
	return m
}

// CheckAndClear atomically reads and clears the resize flag.
func (m *ResizeMonitor) CheckAndClear() bool {
	return m.flag.Swap(false)
}

// Stop uninstalls the signal listener.
func (m *ResizeMonitor) Stop() {
	signal.Stop(m.sigCh)
	close(m.done)
}
