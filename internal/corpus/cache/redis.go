package cache

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/annekeller/mediasearch/internal/search/record"
	"github.com/annekeller/mediasearch/pkg/config"
	pkgredis "github.com/annekeller/mediasearch/pkg/redis"
)

const keyPrefix = "mediasearch:preprocess:"

// RedisCache is the shared-cache alternative to BoltCache, for teams
// running `build` from more than one machine against the same corpus.
// Grounded on the teacher's pkg/redis/client.go and
// internal/searcher/cache/cache.go.
type RedisCache struct {
	client *pkgredis.Client
	cfg    config.RedisConfig
	logger *slog.Logger
}

// NewRedisCache wraps an already-connected Redis client.
func NewRedisCache(client *pkgredis.Client, cfg config.RedisConfig) *RedisCache {
	return &RedisCache{
		client: client,
		cfg:    cfg,
		logger: slog.Default().With("component", "preprocess-cache-redis"),
	}
}

func (c *RedisCache) Get(hash string) (record.Processed, bool) {
	var processed record.Processed
	data, err := c.client.Get(context.Background(), keyPrefix+hash)
	if err != nil {
		if !pkgredis.IsNilError(err) {
			c.logger.Error("cache get failed", "hash", hash, "error", err)
		}
		return processed, false
	}
	if err := json.Unmarshal([]byte(data), &processed); err != nil {
		c.logger.Error("cache unmarshal failed", "hash", hash, "error", err)
		return processed, false
	}
	return processed, true
}

func (c *RedisCache) Set(hash string, rec record.Processed) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return c.client.Set(context.Background(), keyPrefix+hash, data, c.cfg.CacheTTL)
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
