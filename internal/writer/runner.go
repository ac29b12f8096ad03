package writer

import (
	"bytes"
	"context"
	"os/exec"
)

// commandRunner executes an external command and returns its stderr
// output on failure. Swappable so tests can observe the exact argv.
type commandRunner func(ctx context.Context, name string, args ...string) (stderr string, err error)

// runCommand is the real runner backed by os/exec.
func runCommand(ctx context.Context, name string, args ...string) (string, error) {
	command := exec.CommandContext(ctx, name, args...)

	var errBuf bytes.Buffer
	command.Stderr = &errBuf

	err := command.Run()
	return errBuf.String(), err
}
