// Package main is the entry point for the mk task runner.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/mk/cmd/mk/commands"
	"go.trai.ch/mk/internal/app"
	"go.trai.ch/mk/internal/core/domain"
	_ "go.trai.ch/mk/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return exitCode(err)
	}
	return 0
}

// exitCode maps an execution error to the process exit code: a failed recipe
// propagates its subprocess exit code, configuration and graph errors exit 2,
// anything else exits 1.
func exitCode(err error) int {
	var rerr *domain.RecipeError
	if errors.As(err, &rerr) {
		if rerr.ExitCode > 0 {
			return rerr.ExitCode
		}
		return 1
	}
	switch {
	case errors.Is(err, domain.ErrNoRule),
		errors.Is(err, domain.ErrCycleDetected),
		errors.Is(err, domain.ErrDuplicateTarget),
		errors.Is(err, domain.ErrUndefinedVariable):
		return 2
	}
	return 1
}
