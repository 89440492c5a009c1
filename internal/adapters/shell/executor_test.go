package shell_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/mk/internal/adapters/shell"
	"go.trai.ch/mk/internal/core/domain"
	"go.trai.ch/mk/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newTestExecutor(t *testing.T) (*shell.Executor, *bytes.Buffer, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	executor := shell.NewExecutor(mockLogger)
	var out bytes.Buffer
	executor.Stdout = &out
	executor.Stderr = &out
	return executor, &out, mockLogger
}

func testTarget(name string, lines ...string) *domain.Target {
	t := &domain.Target{Name: domain.NewInternedString(name), Phony: true}
	for _, l := range lines {
		t.Recipe = append(t.Recipe, domain.ParseRecipeLine(l))
	}
	return t
}

func TestExecutor_Execute_EchoesCommand(t *testing.T) {
	executor, out, _ := newTestExecutor(t)
	env := domain.NewEnv(nil, false)

	err := executor.Execute(context.Background(), testTarget("greet", "echo hello"), env)
	require.NoError(t, err)

	require.Contains(t, out.String(), "echo hello\n")
	require.Contains(t, out.String(), "hello\n")
}

func TestExecutor_Execute_SuppressEcho(t *testing.T) {
	executor, out, _ := newTestExecutor(t)
	env := domain.NewEnv(nil, false)

	err := executor.Execute(context.Background(), testTarget("quiet", "@echo hushed"), env)
	require.NoError(t, err)

	require.Equal(t, 1, strings.Count(out.String(), "hushed"), "command must not be echoed before running")
}

func TestExecutor_Execute_Interpolates(t *testing.T) {
	executor, out, _ := newTestExecutor(t)
	env := domain.NewEnv(nil, false)
	env.Set("word", "expanded")

	err := executor.Execute(context.Background(), testTarget("vars", "@echo ${word}"), env)
	require.NoError(t, err)
	require.Contains(t, out.String(), "expanded")
}

func TestExecutor_Execute_FailureAborts(t *testing.T) {
	executor, out, _ := newTestExecutor(t)
	env := domain.NewEnv(nil, false)

	err := executor.Execute(context.Background(), testTarget("broken", "@exit 3", "@echo unreachable"), env)
	require.Error(t, err)

	var rerr *domain.RecipeError
	require.ErrorAs(t, err, &rerr)
	require.True(t, errors.Is(err, domain.ErrRecipeFailed))
	require.Equal(t, "broken", rerr.Target)
	require.Equal(t, 3, rerr.ExitCode)
	require.NotContains(t, out.String(), "unreachable")
}

func TestExecutor_Execute_IgnoreFailureContinues(t *testing.T) {
	executor, out, mockLogger := newTestExecutor(t)
	env := domain.NewEnv(nil, false)

	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	err := executor.Execute(context.Background(), testTarget("tolerant", "-@exit 7", "@echo survived"), env)
	require.NoError(t, err)
	require.Contains(t, out.String(), "survived")
}

func TestExecutor_Execute_ChildSeesSnapshot(t *testing.T) {
	executor, out, _ := newTestExecutor(t)
	env := domain.NewEnv(nil, false)
	env.Set("MK_TEST_VALUE", "from-snapshot")

	err := executor.Execute(context.Background(), testTarget("env", `@echo "$MK_TEST_VALUE"`), env)
	require.NoError(t, err)
	require.Contains(t, out.String(), "from-snapshot")
}

func TestExecutor_Execute_RecipeCanWriteFiles(t *testing.T) {
	executor, _, _ := newTestExecutor(t)
	tmpDir := t.TempDir()
	env := domain.NewEnv(nil, false)
	env.Set("out", filepath.Join(tmpDir, "artifact"))

	err := executor.Execute(context.Background(), testTarget("dist", "@touch ${out}"), env)
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(tmpDir, "artifact"))
	require.NoError(t, statErr)
}

func TestEvaluator_Capture(t *testing.T) {
	evaluator := shell.NewEvaluator()

	out, err := evaluator.Capture(context.Background(), "echo captured")
	require.NoError(t, err)
	require.Equal(t, "captured", out, "trailing newline must be trimmed")
}

func TestEvaluator_Capture_Failure(t *testing.T) {
	evaluator := shell.NewEvaluator()

	_, err := evaluator.Capture(context.Background(), "echo oops >&2; exit 1")
	require.Error(t, err)
}
