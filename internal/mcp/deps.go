package mcp

import (
	"context"

	"github.com/stellenwerk/jobsuche-mcp/internal/cache"
	"github.com/stellenwerk/jobsuche-mcp/internal/config"
	"github.com/stellenwerk/jobsuche-mcp/internal/domain/search"
	"github.com/stellenwerk/jobsuche-mcp/pkg/jobsuche"
	"github.com/stellenwerk/jobsuche-mcp/pkg/logging"
)

// Resources aggregates everything the tool handlers need
type Resources struct {
	Search search.Service
	Cache  *cache.DetailCache // nil when REDIS_URL is not configured
}

// provideClientConfig extracts API client config from main config
func provideClientConfig(cfg config.Config) jobsuche.Config {
	return jobsuche.Config{
		BaseURL: cfg.API.BaseURL,
		APIKey:  cfg.API.Key,
	}
}

// provideDetailCache builds the optional Redis-backed detail cache.
// No REDIS_URL means no cache; a configured but unreachable Redis is a
// startup error.
func provideDetailCache(ctx context.Context, cfg config.Config, logger *logging.Logger) (*cache.DetailCache, error) {
	if cfg.RedisURL == "" {
		return nil, nil
	}

	detailCache, err := cache.New(ctx, cfg.RedisURL, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("detail cache initialized", "url", cfg.RedisURL)
	return detailCache, nil
}

// provideSearchService wires the orchestration service
func provideSearchService(cfg config.Config, client *jobsuche.Client, detailCache *cache.DetailCache, logger *logging.Logger) (search.Service, error) {
	opts := []search.Option{
		search.WithClient(client),
		search.WithLogger(logger),
		search.WithPageSizes(cfg.DefaultPageSize, cfg.MaxPageSize),
		search.WithAPIURL(cfg.API.BaseURL),
	}

	if detailCache != nil {
		opts = append(opts, search.WithCache(detailCache))
	}

	return search.NewService(opts...)
}

// newResources creates the Resources struct
func newResources(svc search.Service, detailCache *cache.DetailCache) *Resources {
	return &Resources{
		Search: svc,
		Cache:  detailCache,
	}
}
