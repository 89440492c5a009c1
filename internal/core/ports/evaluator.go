package ports

import "context"

// Evaluator resolves a shell-backed variable by running its command in a
// scoped subprocess and capturing stdout.
//
//go:generate go run go.uber.org/mock/mockgen -source=evaluator.go -destination=mocks/mock_evaluator.go -package=mocks
type Evaluator interface {
	// Capture runs command and returns its stdout with the trailing newline
	// trimmed.
	Capture(ctx context.Context, command string) (string, error)
}
