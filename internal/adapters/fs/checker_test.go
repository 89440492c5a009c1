package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/mk/internal/adapters/fs"
)

func writeFile(t *testing.T, dir, name string, mtime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(name), 0o644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	return path
}

func TestChecker_IsStale_MissingTarget(t *testing.T) {
	checker := fs.NewChecker()

	stale, reason, err := checker.IsStale(filepath.Join(t.TempDir(), "absent"), nil)
	require.NoError(t, err)
	require.True(t, stale)
	require.Equal(t, "file is missing", reason)
}

func TestChecker_IsStale_FreshTarget(t *testing.T) {
	dir := t.TempDir()
	checker := fs.NewChecker()
	now := time.Now()

	source := writeFile(t, dir, "index.md", now.Add(-time.Hour))
	target := writeFile(t, dir, "index.html", now)

	stale, _, err := checker.IsStale(target, []string{source})
	require.NoError(t, err)
	require.False(t, stale)
}

func TestChecker_IsStale_NewerPrereq(t *testing.T) {
	dir := t.TempDir()
	checker := fs.NewChecker()
	now := time.Now()

	target := writeFile(t, dir, "index.html", now.Add(-time.Hour))
	source := writeFile(t, dir, "index.md", now)

	stale, reason, err := checker.IsStale(target, []string{source})
	require.NoError(t, err)
	require.True(t, stale)
	require.Contains(t, reason, "index.md")
}

func TestChecker_IsStale_MissingPrereqIgnored(t *testing.T) {
	dir := t.TempDir()
	checker := fs.NewChecker()

	target := writeFile(t, dir, "index.html", time.Now())

	stale, _, err := checker.IsStale(target, []string{filepath.Join(dir, "phony-dep")})
	require.NoError(t, err)
	require.False(t, stale)
}

func TestChecker_Exists(t *testing.T) {
	dir := t.TempDir()
	checker := fs.NewChecker()

	path := writeFile(t, dir, "present", time.Now())
	require.True(t, checker.Exists(path))
	require.False(t, checker.Exists(filepath.Join(dir, "absent")))
	require.False(t, checker.Exists(dir), "directories are not source files")
}
