package domain

import "time"

// RunRecord is what the state store remembers about the last successful run
// of a file-backed target. A file target whose recorded recipe hash no longer
// matches its current recipe is re-run even when its file is fresh.
type RunRecord struct {
	Target     string    `json:"target"`
	RecipeHash string    `json:"recipe_hash"`
	Timestamp  time.Time `json:"timestamp"`
}
