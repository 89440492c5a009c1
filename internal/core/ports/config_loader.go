package ports

import "go.trai.ch/mk/internal/core/domain"

// ConfigLoader reads the task definitions for one invocation.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given working directory and
	// returns the target graph and the variable environment.
	Load(dir string) (*domain.Graph, *domain.Env, error)
}
