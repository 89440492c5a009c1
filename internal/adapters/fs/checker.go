// Package fs implements the filesystem staleness checker.
package fs

import (
	"fmt"
	"os"
	"time"

	"go.trai.ch/mk/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.StalenessChecker = (*Checker)(nil)

// Checker decides freshness of file-backed targets from modification times.
type Checker struct{}

// NewChecker creates a new Checker.
func NewChecker() *Checker {
	return &Checker{}
}

// Exists reports whether path is an existing regular file.
func (c *Checker) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsStale reports whether the file at path needs rebuilding: it is stale when
// missing or when any prerequisite file is newer. Prerequisites are stat'ed
// concurrently; a missing prerequisite file is ignored, it belongs to a phony
// target that already ran earlier in the plan.
func (c *Checker) IsStale(path string, prereqs []string) (bool, string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return true, "file is missing", nil
		}
		return false, "", zerr.With(zerr.Wrap(err, "failed to stat target file"), "path", path)
	}
	targetTime := info.ModTime()

	times := make([]time.Time, len(prereqs))
	found := make([]bool, len(prereqs))

	var g errgroup.Group
	for i, prereq := range prereqs {
		g.Go(func() error {
			pinfo, err := os.Stat(prereq)
			if err != nil {
				if os.IsNotExist(err) {
					return nil
				}
				return zerr.With(zerr.Wrap(err, "failed to stat prerequisite"), "path", prereq)
			}
			times[i] = pinfo.ModTime()
			found[i] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return false, "", err
	}

	for i, prereq := range prereqs {
		if found[i] && times[i].After(targetTime) {
			return true, fmt.Sprintf("prerequisite %q is newer", prereq), nil
		}
	}
	return false, "", nil
}
