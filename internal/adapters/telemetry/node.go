package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/mk/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry Graft node.
const NodeID graft.ID = "adapter.telemetry"

// ProgressEnv is the environment variable that switches from the quiet
// default to the progrock recorder, which renders a progress report on Close.
const ProgressEnv = "MK_PROGRESS"

func init() {
	graft.Register(graft.Node[ports.Reporter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Reporter, error) {
			if os.Getenv(ProgressEnv) != "" {
				return New(), nil
			}
			return NewQuiet(), nil
		},
	})
}
