// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/mk/internal/core/domain"
)

// Executor runs a target's recipe lines in declaration order.
//
// Each line is interpolated against env, echoed unless suppressed, and run as
// a subprocess inheriting the caller's standard streams. A non-zero exit
// aborts the run with a *domain.RecipeError unless the line is marked
// failure-tolerant.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	Execute(ctx context.Context, target *domain.Target, env *domain.Env) error
}
