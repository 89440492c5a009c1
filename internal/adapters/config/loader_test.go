package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/mk/internal/adapters/config"
	"go.trai.ch/mk/internal/adapters/shell"
	"go.trai.ch/mk/internal/core/domain"
	"go.trai.ch/mk/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const sampleRunfile = `
version: "1"
vars:
  builddir: build
  workdir:
    shell: pwd
targets:
  env:
    phony: true
    recipe:
      - "virtualenv --python=python3 .venv"
  install:
    phony: true
    deps: [env]
    recipe:
      - ".venv/bin/pip install -e .[dev]"
  html:
    phony: true
    deps: [install]
    recipe:
      - "@echo building docs"
      - "-sphinx-build -M html ${workdir} ${builddir}"
patterns:
  - recipe:
      - "sphinx-build -M ${target} . ${builddir}"
`

func writeRunfile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultFilename), []byte(content), 0o644))
	return dir
}

func TestLoader_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockEval := mocks.NewMockEvaluator(ctrl)
	// Lazy variables must not be evaluated at load time.

	loader := config.NewLoader(mockEval)
	dir := writeRunfile(t, sampleRunfile)

	graph, env, err := loader.Load(dir)
	require.NoError(t, err)
	require.Equal(t, 3, graph.TargetCount())

	html, ok := graph.Lookup("html")
	require.True(t, ok)
	require.True(t, html.Phony)
	require.Equal(t, []string{"install"}, html.PrereqNames())

	require.Len(t, html.Recipe, 2)
	require.True(t, html.Recipe[0].SuppressEcho)
	require.Equal(t, "echo building docs", html.Recipe[0].Command)
	require.True(t, html.Recipe[1].IgnoreFailure)

	got, err := env.Get(context.Background(), "builddir")
	require.NoError(t, err)
	require.Equal(t, "build", got)
}

func TestLoader_Load_LazyVarDeferred(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockEval := mocks.NewMockEvaluator(ctrl)
	mockEval.EXPECT().Capture(gomock.Any(), "pwd").Return("/somewhere", nil).Times(1)

	loader := config.NewLoader(mockEval)
	dir := writeRunfile(t, sampleRunfile)

	_, env, err := loader.Load(dir)
	require.NoError(t, err)

	// First reference triggers the single evaluation.
	got, err := env.Get(context.Background(), "workdir")
	require.NoError(t, err)
	require.Equal(t, "/somewhere", got)

	// Second reference hits the cache; Times(1) above enforces memoization.
	_, err = env.Get(context.Background(), "workdir")
	require.NoError(t, err)
}

func TestLoader_Load_CatchAllPattern(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockEvaluator(ctrl))
	dir := writeRunfile(t, sampleRunfile)

	graph, _, err := loader.Load(dir)
	require.NoError(t, err)

	resolved, err := graph.Resolve("latexpdf")
	require.NoError(t, err)
	require.True(t, resolved.Pattern)
	require.Equal(t, "latexpdf", resolved.Name.String())
	require.Equal(t, "sphinx-build -M ${target} . ${builddir}", resolved.Recipe[0].Command)
}

func TestLoader_Load_DotenvLowestPrecedence(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockEvaluator(ctrl))

	dir := writeRunfile(t, "vars:\n  builddir: from-yaml\ntargets: {}\n")
	dotenv := "builddir=from-dotenv\nTOKEN=secret\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(dotenv), 0o644))

	_, env, err := loader.Load(dir)
	require.NoError(t, err)

	got, err := env.Get(context.Background(), "builddir")
	require.NoError(t, err)
	require.Equal(t, "from-yaml", got, "mk.yaml vars override the .env sidecar")

	got, err = env.Get(context.Background(), "TOKEN")
	require.NoError(t, err)
	require.Equal(t, "secret", got)
}

func TestLoader_Load_StrictVars(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockEvaluator(ctrl))
	dir := writeRunfile(t, "strict_vars: true\ntargets: {}\n")

	_, env, err := loader.Load(dir)
	require.NoError(t, err)

	_, err = env.Get(context.Background(), "missing")
	require.True(t, errors.Is(err, domain.ErrUndefinedVariable))
}

func TestLoader_Load_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockEvaluator(ctrl))

	_, _, err := loader.Load(t.TempDir())
	require.Error(t, err)
}

func TestLoader_Load_RealEvaluator(t *testing.T) {
	loader := config.NewLoader(shell.NewEvaluator())
	dir := writeRunfile(t, "vars:\n  greeting:\n    shell: echo hello\ntargets: {}\n")

	_, env, err := loader.Load(dir)
	require.NoError(t, err)

	got, err := env.Get(context.Background(), "greeting")
	require.NoError(t, err)
	require.Equal(t, "hello", got)
}
