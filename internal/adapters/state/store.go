// Package state persists per-target run records between invocations.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/mk/internal/core/domain"
	"go.trai.ch/mk/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultPath is where run records are kept, relative to the working
// directory.
const DefaultPath = ".mk/state.json"

var _ ports.StateStore = (*Store)(nil)

// Store implements ports.StateStore using a flat JSON file.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.RunRecord
}

// NewStore creates a store backed by the file at path, loading any existing
// records.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.RunRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read state file")
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal state file")
	}
	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal state")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create state directory")
	}
	//nolint:gosec // path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write state file")
	}
	return nil
}

// Get retrieves the run record for a target name.
// Returns nil, nil if not found.
func (s *Store) Get(target string) (*domain.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.cache[target]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put stores the run record.
func (s *Store) Put(record domain.RunRecord) error {
	s.mu.Lock()
	s.cache[record.Target] = record
	s.mu.Unlock()

	return s.save()
}

// HashRecipe implements ports.StateStore.
func (s *Store) HashRecipe(recipe []domain.RecipeLine) string {
	return HashRecipe(recipe)
}

// HashRecipe fingerprints a recipe's raw text and modifiers. The hash is
// taken before interpolation so computing it never forces a lazy variable.
func HashRecipe(recipe []domain.RecipeLine) string {
	h := xxhash.New()
	for _, line := range recipe {
		_, _ = h.WriteString(line.Command)
		_, _ = h.Write([]byte{0})
		flags := byte(0)
		if line.SuppressEcho {
			flags |= 1
		}
		if line.IgnoreFailure {
			flags |= 2
		}
		_, _ = h.Write([]byte{flags, 0})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
