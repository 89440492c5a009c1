package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mk/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mk/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mk/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mk/internal/adapters/state"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mk/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mk/internal/core/ports"
)

// NodeID is the unique identifier for the scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			fs.NodeID,
			state.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Scheduler, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			checker, err := graft.Dep[ports.StalenessChecker](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.StateStore](ctx)
			if err != nil {
				return nil, err
			}
			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewScheduler(executor, checker, store, reporter, log), nil
		},
	})
}
