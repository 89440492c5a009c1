package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mk/internal/app"
	_ "go.trai.ch/mk/internal/wiring"
)

// TestGraftDependencies boots the registered node graph end to end and
// asserts the component tree resolves. graft.AssertDepsValid is not usable
// here: it infers dependency IDs from the package name of the interface in
// Dep[T], and every port of this codebase lives in the shared ports package.
func TestGraftDependencies(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
}
