package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrDuplicateTarget is returned when a non-pattern target is defined twice.
	ErrDuplicateTarget = zerr.New("duplicate target definition")

	// ErrNoRule is returned when a requested name matches no target, no
	// pattern rule, and no file on disk.
	ErrNoRule = zerr.New("no rule to make target")

	// ErrCycleDetected is returned when the dependency graph contains a cycle
	// reachable from the requested target.
	ErrCycleDetected = zerr.New("dependency cycle detected")

	// ErrUndefinedVariable is returned in strict mode when an interpolated
	// variable has no value.
	ErrUndefinedVariable = zerr.New("undefined variable")

	// ErrRecipeFailed is the sentinel wrapped by RecipeError.
	ErrRecipeFailed = zerr.New("recipe failed")

	// ErrNoTargets is returned when a run is requested without any target names.
	ErrNoTargets = zerr.New("no targets requested")
)

// WithDetail attaches a metadata pair to err without dropping err from the
// unwrap chain. zerr.With called directly on a sentinel replaces it with a
// metadata-carrying copy, so errors.Is(result, sentinel) would no longer hold;
// wrapping first keeps the sentinel as the cause.
func WithDetail(err error, key, value string) error {
	return zerr.With(zerr.Wrap(err, ""), key, value)
}

// RecipeError reports a recipe line that exited non-zero without being marked
// failure-tolerant. It carries the subprocess exit code so the CLI can
// propagate it.
type RecipeError struct {
	Target   string
	Command  string
	ExitCode int
}

func (e *RecipeError) Error() string {
	return fmt.Sprintf("recipe failed: target %q, command %q, exit code %d", e.Target, e.Command, e.ExitCode)
}

// Unwrap makes errors.Is(err, ErrRecipeFailed) hold for RecipeError values.
func (e *RecipeError) Unwrap() error {
	return ErrRecipeFailed
}
