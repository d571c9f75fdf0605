package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stellenwerk/jobsuche-mcp/internal/domain"
	"github.com/stellenwerk/jobsuche-mcp/pkg/logging"
)

// Postings change rarely; an hour keeps repeat detail expansions cheap
// without serving stale descriptions for long.
const detailTTL = time.Hour

// DetailCache stores projected job details in Redis keyed by reference
// number. Every cache failure degrades to a miss.
type DetailCache struct {
	rdb    *redis.Client
	logger *logging.Logger
	ttl    time.Duration
}

// New parses redisURL, verifies connectivity, and returns the cache
func New(ctx context.Context, redisURL string, logger *logging.Logger) (*DetailCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL(%q): %w", redisURL, err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &DetailCache{rdb: client, logger: logger, ttl: detailTTL}, nil
}

func (c *DetailCache) Get(ctx context.Context, refnr string) (domain.JobDetail, bool) {
	raw, err := c.rdb.Get(ctx, key(refnr)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("detail cache read failed", "refnr", refnr, "err", err)
		}
		return domain.JobDetail{}, false
	}

	var detail domain.JobDetail
	if err := json.Unmarshal(raw, &detail); err != nil {
		c.logger.Warn("detail cache entry corrupt, ignoring", "refnr", refnr, "err", err)
		return domain.JobDetail{}, false
	}

	return detail, true
}

func (c *DetailCache) Set(ctx context.Context, refnr string, detail domain.JobDetail) {
	raw, err := json.Marshal(detail)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key(refnr), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("detail cache write failed", "refnr", refnr, "err", err)
	}
}

func (c *DetailCache) Close() error {
	return c.rdb.Close()
}

func key(refnr string) string {
	return "jobdetail:" + refnr
}
