package main

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mk/internal/core/domain"
)

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tmpDir := t.TempDir()
	runfile := `version: "1"
targets:
  hello:
    phony: true
    recipe:
      - "@echo hello"
`
	require.NoError(t, os.WriteFile(tmpDir+"/mk.yaml", []byte(runfile), 0o600))

	originalWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	defer func() {
		_ = os.Chdir(originalWd)
	}()

	os.Args = []string{"mk", "run", "hello"}
	assert.Equal(t, 0, run())
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "recipe failure propagates subprocess exit code",
			err:  &domain.RecipeError{Target: "build", Command: "false", ExitCode: 3},
			want: 3,
		},
		{
			name: "recipe failure without exit code",
			err:  &domain.RecipeError{Target: "build", Command: "false", ExitCode: -1},
			want: 1,
		},
		{
			name: "unknown target",
			err:  domain.ErrNoRule,
			want: 2,
		},
		{
			name: "dependency cycle",
			err:  domain.ErrCycleDetected,
			want: 2,
		},
		{
			name: "duplicate target",
			err:  domain.ErrDuplicateTarget,
			want: 2,
		},
		{
			name: "undefined variable under strict mode",
			err:  domain.ErrUndefinedVariable,
			want: 2,
		},
		{
			name: "anything else",
			err:  errors.New("boom"),
			want: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
