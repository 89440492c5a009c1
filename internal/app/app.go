// Package app implements the application layer for mk.
package app

import (
	"context"
	"sort"
	"strings"

	"go.trai.ch/mk/internal/core/ports"
	"go.trai.ch/mk/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	scheduler    *scheduler.Scheduler
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, sched *scheduler.Scheduler) *App {
	return &App{
		configLoader: loader,
		scheduler:    sched,
	}
}

// Run loads the runfile from the working directory and executes the requested
// targets. Arguments of the form KEY=value are variable overrides; they shadow
// runfile variables for the whole run. Everything else is a target name.
func (a *App) Run(ctx context.Context, args []string) error {
	graph, env, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	targets, overrides := splitArgs(args)
	for key, value := range overrides {
		env.Set(key, value)
	}

	return a.scheduler.Execute(ctx, graph, env, targets)
}

// Targets returns the names of all non-pattern targets defined in the
// runfile, sorted, plus a trailing entry per catch-all pattern.
func (a *App) Targets() ([]string, error) {
	graph, _, err := a.configLoader.Load(".")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	var names []string
	for target := range graph.Targets() {
		names = append(names, target.Name.String())
	}
	sort.Strings(names)

	for _, pattern := range graph.Patterns() {
		match := pattern.Match
		if match == "" {
			match = "*"
		}
		names = append(names, match+" (pattern)")
	}
	return names, nil
}

// splitArgs separates target names from KEY=value variable overrides. The key
// must be non-empty and must not itself contain '='; a leading '=' makes the
// argument a target name.
func splitArgs(args []string) ([]string, map[string]string) {
	var targets []string
	overrides := make(map[string]string)
	for _, arg := range args {
		if key, value, ok := strings.Cut(arg, "="); ok && key != "" {
			overrides[key] = value
			continue
		}
		targets = append(targets, arg)
	}
	return targets, overrides
}
