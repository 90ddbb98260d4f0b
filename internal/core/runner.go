package core

import (
	"context"
	"os/exec"
)

// Runner executes a system command and returns its combined output.
// Backends depend on this seam so tests can intercept every invocation.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner is the os/exec backed Runner used in production.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// IsCommandAvailable reports whether a command can be found on PATH.
func IsCommandAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
