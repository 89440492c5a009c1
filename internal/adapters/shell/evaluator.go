package shell

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/mk/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Evaluator = (*Evaluator)(nil)

// Evaluator resolves shell-backed variables. Unlike recipe lines, the
// subprocess output is captured rather than streamed; stderr is kept for the
// error report only.
type Evaluator struct{}

// NewEvaluator creates a new Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Capture runs command with sh -c and returns its stdout with the trailing
// newline trimmed.
func (e *Evaluator) Capture(ctx context.Context, command string) (string, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", command) //nolint:gosec // user provided command
	cmd.Env = os.Environ()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		wrapped := zerr.With(zerr.Wrap(err, "variable shell command failed"), "command", command)
		if stderr.Len() > 0 {
			wrapped = zerr.With(wrapped, "stderr", strings.TrimRight(stderr.String(), "\n"))
		}
		return "", wrapped
	}

	return strings.TrimRight(stdout.String(), "\n"), nil
}
