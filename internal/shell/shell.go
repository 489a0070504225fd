// ABOUTME: Runs the submitted command line in the user's login shell
// ABOUTME: Returns the child exit code; signal terminations map to 128+signal

package shell

import (
	"errors"
	"os"
	"os/exec"
	"syscall"

	"github.com/mauromedda/splashfetch-go/internal/log"
)

// Run executes command in a login shell, inheriting the real terminal,
// and blocks until it terminates. The returned code is the child's
// exit status (0-255); a signal-terminated child yields 128+signal; a
// shell that cannot start yields 127.
func Run(command string, env map[string]string) int {
	sh := os.Getenv("SHELL")
	if sh == "" {
		sh = "/bin/sh"
	}

	cmd := exec.Command(sh, "-l", "-c", command)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()
	for k, v := range env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	err := cmd.Run()
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			code := 128 + int(ws.Signal())
			if code > 255 {
				code = 255
			}
			return code
		}
		return exitErr.ExitCode()
	}

	log.Error("starting %s: %v", sh, err)
	return 127
}
