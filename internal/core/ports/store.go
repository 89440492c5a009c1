package ports

import "go.trai.ch/mk/internal/core/domain"

// StateStore persists per-target run records across invocations.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type StateStore interface {
	// Get retrieves the run record for a target name.
	// Returns nil, nil if not found.
	Get(target string) (*domain.RunRecord, error)

	// Put stores the run record.
	Put(record domain.RunRecord) error

	// HashRecipe fingerprints a recipe for change detection. The hash is
	// taken over the raw recipe text and modifiers, never the interpolated
	// form, so computing it cannot force a lazy variable.
	HashRecipe(recipe []domain.RecipeLine) string
}
