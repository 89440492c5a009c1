// Package domain contains the core model of the task runner: targets,
// recipes, the dependency graph, and the variable environment.
package domain

import (
	"iter"
	"path"

	"go.trai.ch/zerr"
)

// Graph is the in-memory registry of target definitions for one invocation.
// Exact targets live in a map keyed by interned name; pattern rules are kept
// in declaration order because resolution returns the first match.
type Graph struct {
	targets  map[InternedString]Target
	order    []InternedString
	patterns []Target
}

// NewGraph creates an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		targets: make(map[InternedString]Target),
	}
}

// Define registers a target. Defining a non-pattern target under a name that
// is already taken is a configuration error, not a last-definition-wins
// override. Pattern targets are appended in declaration order.
func (g *Graph) Define(t *Target) error {
	if t.Pattern {
		g.patterns = append(g.patterns, *t)
		return nil
	}
	if _, exists := g.targets[t.Name]; exists {
		return WithDetail(ErrDuplicateTarget, "target", t.Name.String())
	}
	g.targets[t.Name] = *t
	g.order = append(g.order, t.Name)
	return nil
}

// Lookup returns the exact (non-pattern) target registered under name.
func (g *Graph) Lookup(name string) (Target, bool) {
	t, ok := g.targets[NewInternedString(name)]
	return t, ok
}

// Resolve maps a requested name to the target that should satisfy it: the
// exact target if one is declared, otherwise the first pattern rule whose
// glob accepts the name. A pattern match is returned as a copy carrying the
// requested name, so its recipe can reference the name it was asked for.
// Pattern matches are always phony; there is no backing file to compare.
func (g *Graph) Resolve(name string) (Target, error) {
	if t, ok := g.Lookup(name); ok {
		return t, nil
	}
	for _, p := range g.patterns {
		glob := p.Match
		if glob == "" {
			glob = "*"
		}
		if ok, err := path.Match(glob, name); err != nil {
			return Target{}, zerr.With(zerr.Wrap(err, "invalid pattern glob"), "glob", glob)
		} else if ok {
			matched := p
			matched.Name = NewInternedString(name)
			matched.Match = glob
			matched.Phony = true
			return matched, nil
		}
	}
	return Target{}, WithDetail(ErrNoRule, "target", name)
}

// Targets yields the exact targets in declaration order.
func (g *Graph) Targets() iter.Seq[Target] {
	return func(yield func(Target) bool) {
		for _, name := range g.order {
			if !yield(g.targets[name]) {
				return
			}
		}
	}
}

// Patterns returns the pattern rules in declaration order.
func (g *Graph) Patterns() []Target {
	return g.patterns
}

// TargetCount reports the number of exact targets.
func (g *Graph) TargetCount() int {
	return len(g.targets)
}
