package domain_test

import (
	"errors"
	"testing"

	"go.trai.ch/mk/internal/core/domain"
	"go.trai.ch/zerr"
)

func target(name string, prereqs ...string) *domain.Target {
	t := &domain.Target{Name: domain.NewInternedString(name)}
	for _, p := range prereqs {
		t.Prereqs = append(t.Prereqs, domain.NewInternedString(p))
	}
	return t
}

func TestGraph_Define_Duplicate(t *testing.T) {
	g := domain.NewGraph()

	if err := g.Define(target("html")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := g.Define(target("html"))
	if err == nil {
		t.Fatal("expected error when defining duplicate target, got nil")
	}
	if !errors.Is(err, domain.ErrDuplicateTarget) {
		t.Errorf("expected ErrDuplicateTarget, got %v", err)
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	if name, ok := zErr.Metadata()["target"].(string); !ok || name != "html" {
		t.Errorf("expected metadata target=html, got %v", zErr.Metadata()["target"])
	}
}

func TestGraph_Resolve_Exact(t *testing.T) {
	g := domain.NewGraph()
	if err := g.Define(target("dist", "env")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resolved, err := g.Resolve("dist")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved.Name.String() != "dist" {
		t.Errorf("expected target dist, got %s", resolved.Name)
	}
	if resolved.Pattern {
		t.Error("exact match must not be marked as a pattern match")
	}
}

func TestGraph_Resolve_CatchAll(t *testing.T) {
	g := domain.NewGraph()
	catchAll := &domain.Target{
		Pattern: true,
		Recipe:  []domain.RecipeLine{{Command: "sphinx-build -M ${target} . build"}},
	}
	if err := g.Define(catchAll); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resolved, err := g.Resolve("linkcheck")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved.Name.String() != "linkcheck" {
		t.Errorf("expected requested name bound to match, got %s", resolved.Name)
	}
	if !resolved.Pattern {
		t.Error("pattern match must keep its pattern flag")
	}
	if !resolved.Phony {
		t.Error("pattern match must be phony")
	}
}

func TestGraph_Resolve_ExactBeatsPattern(t *testing.T) {
	g := domain.NewGraph()
	if err := g.Define(&domain.Target{Pattern: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.Define(target("html")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resolved, err := g.Resolve("html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved.Pattern {
		t.Error("declared target must win over the catch-all rule")
	}
}

func TestGraph_Resolve_GlobOrder(t *testing.T) {
	g := domain.NewGraph()
	first := &domain.Target{Pattern: true, Match: "*.html", Recipe: []domain.RecipeLine{{Command: "first"}}}
	second := &domain.Target{Pattern: true, Recipe: []domain.RecipeLine{{Command: "second"}}}
	if err := g.Define(first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.Define(second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resolved, err := g.Resolve("index.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved.Recipe[0].Command != "first" {
		t.Errorf("expected first matching pattern in declaration order, got %q", resolved.Recipe[0].Command)
	}

	resolved, err = g.Resolve("upload")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved.Recipe[0].Command != "second" {
		t.Errorf("expected catch-all for non-glob name, got %q", resolved.Recipe[0].Command)
	}
}

func TestGraph_Resolve_NoRule(t *testing.T) {
	g := domain.NewGraph()
	_, err := g.Resolve("missing")
	if !errors.Is(err, domain.ErrNoRule) {
		t.Errorf("expected ErrNoRule, got %v", err)
	}
}

func TestGraph_Targets_DeclarationOrder(t *testing.T) {
	g := domain.NewGraph()
	for _, name := range []string{"env", "clean", "html"} {
		if err := g.Define(target(name)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	var got []string
	for tgt := range g.Targets() {
		got = append(got, tgt.Name.String())
	}
	want := []string{"env", "clean", "html"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected declaration order %v, got %v", want, got)
		}
	}
}
