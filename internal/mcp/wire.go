//go:build wireinject
// +build wireinject

package mcp

import (
	"context"

	"github.com/google/wire"

	"github.com/stellenwerk/jobsuche-mcp/internal/config"
	"github.com/stellenwerk/jobsuche-mcp/pkg/jobsuche"
	"github.com/stellenwerk/jobsuche-mcp/pkg/logging"
)

// InitializeResources creates Resources with all collaborators wired up
func InitializeResources(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Resources, error) {
	wire.Build(
		provideClientConfig,
		jobsuche.NewClient,
		provideDetailCache,
		provideSearchService,
		newResources,
	)

	return &Resources{}, nil
}
