package domain

import (
	"context"
	"sort"
	"strings"

	"go.trai.ch/zerr"
)

// TargetVar is the substitution variable bound to the requested name inside
// the interpolation scope of a matched pattern rule.
const TargetVar = "target"

// EvalFunc runs a shell command and returns its stdout with the trailing
// newline trimmed. It backs lazily-evaluated variables.
type EvalFunc func(ctx context.Context, command string) (string, error)

// Env is the variable environment for one invocation. Values are either
// literal strings or deferred shell computations; a deferred value is
// evaluated at most once per run and cached, because re-running a subprocess
// with side effects mid-run would be observably wrong.
//
// Env is never mutated by executed recipes. Child processes receive a
// snapshot, not a reference.
type Env struct {
	eval   EvalFunc
	strict bool

	values map[string]string
	lazy   map[string]string
	scope  map[string]string
}

// NewEnv creates an empty environment. eval backs lazy variables; strict
// selects hard failure on undefined variables instead of the default
// empty-string policy.
func NewEnv(eval EvalFunc, strict bool) *Env {
	return &Env{
		eval:   eval,
		strict: strict,
		values: make(map[string]string),
		lazy:   make(map[string]string),
	}
}

// Set stores a literal value. It shadows any lazy definition of the same key,
// which is how command-line overrides beat config-file definitions.
func (e *Env) Set(key, value string) {
	e.values[key] = value
	delete(e.lazy, key)
}

// SetLazy stores a deferred shell computation for key.
func (e *Env) SetLazy(key, command string) {
	e.lazy[key] = command
	delete(e.values, key)
}

// WithScope returns a view of the environment with additional scoped
// bindings. The lazy-value cache is shared with the parent, so memoization
// still holds once per run across scopes.
func (e *Env) WithScope(bindings map[string]string) *Env {
	scoped := *e
	scoped.scope = bindings
	return &scoped
}

// Get resolves key: scoped bindings first, then literals, then lazy values
// (evaluated and cached on first use). An unknown key resolves to "" unless
// strict mode is on.
func (e *Env) Get(ctx context.Context, key string) (string, error) {
	if v, ok := e.scope[key]; ok {
		return v, nil
	}
	if v, ok := e.values[key]; ok {
		return v, nil
	}
	if command, ok := e.lazy[key]; ok {
		out, err := e.eval(ctx, command)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "lazy variable evaluation failed"), "variable", key)
		}
		out = strings.TrimRight(out, "\n")
		e.values[key] = out
		delete(e.lazy, key)
		return out, nil
	}
	if e.strict {
		return "", WithDetail(ErrUndefinedVariable, "variable", key)
	}
	return "", nil
}

// Interpolate replaces every ${key} occurrence in template with Get(key),
// left to right. Substituted text is never re-scanned, so a value containing
// ${...} cannot trigger further expansion.
func (e *Env) Interpolate(ctx context.Context, template string) (string, error) {
	var b strings.Builder
	rest := template
	for {
		start := strings.Index(rest, "${")
		if start < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		b.WriteString(rest[:start])
		end := strings.Index(rest[start:], "}")
		if end < 0 {
			return "", zerr.With(zerr.New("unterminated variable reference"), "template", template)
		}
		key := rest[start+2 : start+end]
		value, err := e.Get(ctx, key)
		if err != nil {
			return "", err
		}
		b.WriteString(value)
		rest = rest[start+end+1:]
	}
}

// Snapshot returns the resolved bindings as sorted KEY=VALUE pairs for child
// processes. Lazy variables that were never referenced are not forced; their
// backing commands may have side effects.
func (e *Env) Snapshot() []string {
	pairs := make([]string, 0, len(e.values)+len(e.scope))
	for k, v := range e.values {
		if _, shadowed := e.scope[k]; shadowed {
			continue
		}
		pairs = append(pairs, k+"="+v)
	}
	for k, v := range e.scope {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)
	return pairs
}
