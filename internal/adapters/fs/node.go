package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mk/internal/core/ports"
)

// NodeID is the unique identifier for the staleness checker Graft node.
const NodeID graft.ID = "adapter.fs_checker"

func init() {
	graft.Register(graft.Node[ports.StalenessChecker]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StalenessChecker, error) {
			return NewChecker(), nil
		},
	})
}
