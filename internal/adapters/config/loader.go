// Package config loads the mk.yaml task definitions.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"
	"go.trai.ch/mk/internal/core/domain"
	"go.trai.ch/mk/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the config file looked up in the working directory.
const DefaultFilename = "mk.yaml"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader from a YAML file plus an optional
// .env sidecar. The sidecar has the lowest precedence: mk.yaml vars override
// it, and command-line overrides beat both.
type Loader struct {
	evaluator ports.Evaluator

	// Filename names the config file inside the load directory.
	Filename string
}

// NewLoader creates a Loader reading DefaultFilename.
func NewLoader(evaluator ports.Evaluator) *Loader {
	return &Loader{
		evaluator: evaluator,
		Filename:  DefaultFilename,
	}
}

// Runfile is the structure of the mk.yaml configuration file.
type Runfile struct {
	Version    string               `yaml:"version"`
	StrictVars bool                 `yaml:"strict_vars"`
	Vars       map[string]VarDTO    `yaml:"vars"`
	Targets    map[string]TargetDTO `yaml:"targets"`
	Patterns   []PatternDTO         `yaml:"patterns"`
}

// TargetDTO is a target definition in the configuration.
type TargetDTO struct {
	Phony  bool     `yaml:"phony"`
	Deps   []string `yaml:"deps"`
	Recipe []string `yaml:"recipe"`
}

// PatternDTO is a catch-all rule definition. Rules are matched in the order
// they are declared.
type PatternDTO struct {
	Match  string   `yaml:"match"`
	Deps   []string `yaml:"deps"`
	Recipe []string `yaml:"recipe"`
}

// VarDTO is a variable definition: either a plain scalar (literal value) or
// a mapping with a "shell" key (deferred shell computation).
type VarDTO struct {
	Literal string
	Shell   string
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *VarDTO) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&v.Literal)
	case yaml.MappingNode:
		var m struct {
			Shell string `yaml:"shell"`
		}
		if err := node.Decode(&m); err != nil {
			return err
		}
		if m.Shell == "" {
			return zerr.New("variable mapping requires a shell key")
		}
		v.Shell = m.Shell
		return nil
	default:
		return zerr.New("variable must be a scalar or a shell mapping")
	}
}

// Load reads the configuration from the given working directory and returns
// the target graph and variable environment for one invocation.
func (l *Loader) Load(dir string) (*domain.Graph, *domain.Env, error) {
	path := filepath.Join(dir, l.Filename)
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var rf Runfile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	env := domain.NewEnv(l.evaluator.Capture, rf.StrictVars)
	if err := l.loadDotenv(dir, env); err != nil {
		return nil, nil, err
	}
	for name, v := range rf.Vars {
		if v.Shell != "" {
			env.SetLazy(name, v.Shell)
		} else {
			env.Set(name, v.Literal)
		}
	}

	graph, err := buildGraph(&rf)
	if err != nil {
		return nil, nil, err
	}
	return graph, env, nil
}

func (l *Loader) loadDotenv(dir string, env *domain.Env) error {
	path := filepath.Join(dir, ".env")
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to load .env file"), "path", path)
	}
	for k, v := range values {
		env.Set(k, v)
	}
	return nil
}

func buildGraph(rf *Runfile) (*domain.Graph, error) {
	g := domain.NewGraph()

	// YAML mappings carry no order, so sort for a stable listing.
	names := make([]string, 0, len(rf.Targets))
	for name := range rf.Targets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		dto := rf.Targets[name]
		if err := g.Define(toTarget(name, dto.Phony, false, "", dto.Deps, dto.Recipe)); err != nil {
			return nil, err
		}
	}
	for _, dto := range rf.Patterns {
		if err := g.Define(toTarget("", true, true, dto.Match, dto.Deps, dto.Recipe)); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func toTarget(name string, phony, pattern bool, match string, deps, recipe []string) *domain.Target {
	t := &domain.Target{
		Name:    domain.NewInternedString(name),
		Phony:   phony,
		Pattern: pattern,
		Match:   match,
	}
	for _, d := range deps {
		t.Prereqs = append(t.Prereqs, domain.NewInternedString(d))
	}
	for _, line := range recipe {
		t.Recipe = append(t.Recipe, domain.ParseRecipeLine(line))
	}
	return t
}
