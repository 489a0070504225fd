// ABOUTME: Resize monitor stub for platforms without SIGWINCH
// ABOUTME: CheckAndClear always reports false; layout still follows explicit size queries

//go:build !unix

package terminal

// ResizeMonitor is inert on platforms without SIGWINCH.
type ResizeMonitor struct{}

func NewResizeMonitor() *ResizeMonitor { return &ResizeMonitor{} }

func (m *ResizeMonitor) CheckAndClear() bool { return false }

func (m *ResizeMonitor) Stop() {}
