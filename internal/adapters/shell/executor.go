// Package shell runs recipe lines and shell-backed variables via sh -c.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"go.trai.ch/mk/internal/core/domain"
	"go.trai.ch/mk/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
//
// Each recipe line is interpolated, echoed to Stdout unless suppressed, and
// run as "sh -c <line>" with the caller's standard streams and working
// directory. The child environment is a snapshot: os.Environ() plus the
// resolved variable bindings, never a live reference.
type Executor struct {
	logger ports.Logger

	// Stdout and Stderr are the streams handed to subprocesses and used for
	// command echo. They default to the process streams; tests override them.
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Execute runs the target's recipe lines in declaration order. A non-zero
// exit aborts with a *domain.RecipeError unless the line is marked
// failure-tolerant, in which case the failure is logged and the next line
// runs.
func (e *Executor) Execute(ctx context.Context, target *domain.Target, env *domain.Env) error {
	for _, line := range target.Recipe {
		command, err := env.Interpolate(ctx, line.Command)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to expand recipe line"), "target", target.Name.String())
		}
		if command == "" {
			continue
		}

		if !line.SuppressEcho {
			_, _ = fmt.Fprintln(e.Stdout, command)
		}

		if err := e.runLine(ctx, command, env); err != nil {
			code := exitCode(err)
			if line.IgnoreFailure {
				e.logger.Warn(fmt.Sprintf("ignoring failure of %q (exit code %d)", command, code))
				continue
			}
			return &domain.RecipeError{
				Target:   target.Name.String(),
				Command:  command,
				ExitCode: code,
			}
		}
	}
	return nil
}

func (e *Executor) runLine(ctx context.Context, command string, env *domain.Env) error {
	cmd := exec.CommandContext(ctx, "sh", "-c", command) //nolint:gosec // user provided command
	cmd.Env = append(os.Environ(), env.Snapshot()...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	return cmd.Run()
}

func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
