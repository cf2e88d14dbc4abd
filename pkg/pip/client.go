// pkg/pip/client.go
package pip

import (
	"context"
	"os"
	"os/exec"
)

// Executor abstracts command execution to ease testing.
type Executor interface {
	// Output runs the command and returns its stdout. Stdout already
	// written is returned alongside a non-nil error when the command
	// exits non-zero.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)

	// Run executes the command with stdout and stderr attached to the
	// terminal.
	Run(ctx context.Context, name string, args ...string) error
}

// SystemExecutor executes commands using the local OS.
type SystemExecutor struct{}

func (SystemExecutor) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

func (SystemExecutor) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
