// Package scheduler plans and executes dependency-ordered target runs.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.trai.ch/mk/internal/core/domain"
	"go.trai.ch/mk/internal/core/ports"
	"go.trai.ch/zerr"
)

// Scheduler resolves requested targets into an execution plan and runs it.
// Execution is strictly sequential: later targets may assume the side effects
// of earlier ones, so nothing runs in parallel.
type Scheduler struct {
	executor ports.Executor
	checker  ports.StalenessChecker
	store    ports.StateStore
	reporter ports.Reporter
	logger   ports.Logger
}

// NewScheduler creates a Scheduler with the given collaborators.
func NewScheduler(
	executor ports.Executor,
	checker ports.StalenessChecker,
	store ports.StateStore,
	reporter ports.Reporter,
	logger ports.Logger,
) *Scheduler {
	return &Scheduler{
		executor: executor,
		checker:  checker,
		store:    store,
		reporter: reporter,
		logger:   logger,
	}
}

// Plan resolves the requested names into an ordered, deduplicated sequence of
// targets: every prerequisite strictly precedes its dependents, and a target
// reached through several paths appears once, at its first occurrence.
// Prerequisites that resolve to no rule but exist as regular files are source
// leaves; they participate in staleness checks but are never scheduled.
func (s *Scheduler) Plan(graph *domain.Graph, requests []string) ([]domain.Target, error) {
	p := &planner{
		graph:   graph,
		checker: s.checker,
		state:   make(map[string]visitState),
	}
	for _, name := range requests {
		if err := p.visit(name); err != nil {
			return nil, err
		}
	}
	return p.plan, nil
}

// Execute plans the requested targets and runs them in order, stopping at the
// first unrecovered failure.
func (s *Scheduler) Execute(ctx context.Context, graph *domain.Graph, env *domain.Env, requests []string) error {
	if len(requests) == 0 {
		return domain.ErrNoTargets
	}

	plan, err := s.Plan(graph, requests)
	if err != nil {
		return err
	}

	names := make([]string, len(plan))
	for i, t := range plan {
		names[i] = t.Name.String()
	}
	s.reporter.PlanResolved(names)
	defer func() {
		if err := s.reporter.Close(); err != nil {
			s.logger.Error(err)
		}
	}()

	for _, target := range plan {
		if err := s.runTarget(ctx, graph, env, &target); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scheduler) runTarget(ctx context.Context, graph *domain.Graph, env *domain.Env, target *domain.Target) error {
	name := target.Name.String()

	if !target.Phony {
		skip, reason, err := s.shouldSkip(graph, target)
		if err != nil {
			return err
		}
		if skip {
			s.reporter.TargetSkipped(name, "up to date")
			s.logger.Info(fmt.Sprintf("%s is up to date", name))
			return nil
		}
		if reason != "" {
			s.logger.Info(fmt.Sprintf("remaking %s: %s", name, reason))
		}
	}

	runEnv := env
	if target.Pattern {
		runEnv = env.WithScope(map[string]string{domain.TargetVar: name})
	}

	s.reporter.TargetStarted(name)
	err := s.executor.Execute(ctx, target, runEnv)
	s.reporter.TargetFinished(name, err)
	if err != nil {
		return err
	}

	if !target.Phony {
		record := domain.RunRecord{
			Target:     name,
			RecipeHash: s.store.HashRecipe(target.Recipe),
			Timestamp:  time.Now(),
		}
		if err := s.store.Put(record); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to record run"), "target", name)
		}
	}
	return nil
}

// shouldSkip applies the freshness rules for a file-backed target: skip when
// the backing file is newer than every prerequisite file and the recipe is
// unchanged since the recorded run. An absent run record trusts the mtime
// check alone.
func (s *Scheduler) shouldSkip(graph *domain.Graph, target *domain.Target) (bool, string, error) {
	name := target.Name.String()

	stale, reason, err := s.checker.IsStale(name, filePrereqs(graph, target))
	if err != nil {
		return false, "", err
	}
	if stale {
		return false, reason, nil
	}

	record, err := s.store.Get(name)
	if err != nil {
		return false, "", zerr.With(zerr.Wrap(err, "failed to read run record"), "target", name)
	}
	if record != nil && record.RecipeHash != s.store.HashRecipe(target.Recipe) {
		return false, "recipe changed", nil
	}
	return true, "", nil
}

// filePrereqs returns the prerequisites that are backed by files: declared
// file targets and source files. Phony prerequisites carry no timestamp and
// are excluded from the comparison.
func filePrereqs(graph *domain.Graph, target *domain.Target) []string {
	var files []string
	for _, prereq := range target.Prereqs {
		name := prereq.String()
		if resolved, err := graph.Resolve(name); err == nil && resolved.Phony {
			continue
		}
		files = append(files, name)
	}
	return files
}

type visitState int

const (
	unvisited visitState = iota
	visiting
	done
)

type planner struct {
	graph   *domain.Graph
	checker ports.StalenessChecker
	state   map[string]visitState
	path    []string
	plan    []domain.Target
}

func (p *planner) visit(name string) error {
	switch p.state[name] {
	case done:
		return nil
	case visiting:
		return p.cycleError(name)
	}

	target, err := p.graph.Resolve(name)
	if err != nil {
		if errors.Is(err, domain.ErrNoRule) && p.checker.Exists(name) {
			// Source file: satisfied by its mere existence.
			p.state[name] = done
			return nil
		}
		if len(p.path) > 0 {
			return zerr.With(err, "required_by", p.path[len(p.path)-1])
		}
		return err
	}

	p.state[name] = visiting
	p.path = append(p.path, name)

	for _, prereq := range target.Prereqs {
		if err := p.visit(prereq.String()); err != nil {
			return err
		}
	}

	p.path = p.path[:len(p.path)-1]
	p.state[name] = done
	p.plan = append(p.plan, target)
	return nil
}

func (p *planner) cycleError(name string) error {
	start := 0
	for i, n := range p.path {
		if n == name {
			start = i
			break
		}
	}
	cycle := strings.Join(append(p.path[start:len(p.path):len(p.path)], name), " -> ")
	return domain.WithDetail(domain.ErrCycleDetected, "cycle", cycle)
}
