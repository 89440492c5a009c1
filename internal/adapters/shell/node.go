package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mk/internal/adapters/logger"
	"go.trai.ch/mk/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the executor Graft node.
	NodeID graft.ID = "adapter.shell_executor"
	// EvaluatorNodeID is the unique identifier for the evaluator Graft node.
	EvaluatorNodeID graft.ID = "adapter.shell_evaluator"
)

func init() {
	graft.Register(graft.Node[ports.Executor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Executor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecutor(log), nil
		},
	})

	graft.Register(graft.Node[ports.Evaluator]{
		ID:        EvaluatorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Evaluator, error) {
			return NewEvaluator(), nil
		},
	})
}
