// ABOUTME: Stub input poller for non-unix platforms
// ABOUTME: The interactive loop runs without keyboard input there

//go:build !unix

package app

func stdinPoller() func() []byte {
	return func() []byte { return nil }
}
