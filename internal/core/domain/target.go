package domain

// Target is a named unit of work: an ordered list of prerequisites and an
// ordered recipe. A phony target has no backing file and always runs; a
// file-backed target is skipped when its file is up to date. A pattern
// target is a catch-all rule matching otherwise-undeclared names.
type Target struct {
	Name    InternedString
	Prereqs []InternedString
	Recipe  []RecipeLine

	// Phony marks a target with no backing file.
	Phony bool

	// Pattern marks a catch-all rule. On a resolved pattern match, Name holds
	// the requested name and Match the glob that accepted it.
	Pattern bool

	// Match is the glob a pattern target accepts, "*" for a pure catch-all.
	// Empty for exact targets.
	Match string
}

// PrereqNames returns the prerequisites as plain strings.
func (t *Target) PrereqNames() []string {
	if len(t.Prereqs) == 0 {
		return nil
	}
	names := make([]string, len(t.Prereqs))
	for i, p := range t.Prereqs {
		names[i] = p.String()
	}
	return names
}
