package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Richard-klement/va-squash-constantia/internal/logger"
)

// Cache is a small JSON read cache over redis. A nil *Cache is valid
// and disables caching, so callers never need to branch on config.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New connects to redis at addr. An empty addr disables caching.
func New(addr string, ttl time.Duration) *Cache {
	if addr == "" {
		return nil
	}
	return &Cache{
		rdb: redis.NewClient(&redis.Options{
			Addr: addr,
		}),
		ttl: ttl,
	}
}

// NewWithClient wires an existing client, used by tests.
func NewWithClient(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: client, ttl: ttl}
}

// Get unmarshals the cached value for key into dest. A miss, a decode
// failure, or a redis error all report !ok; the cache is best-effort
// and never fails a request.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil {
		return false
	}

	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Debugf("cache get %s: %v", key, err)
		}
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		logger.Errorf("cache decode %s: %v", key, err)
		return false
	}

	return true
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}) {
	if c == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		logger.Errorf("cache encode %s: %v", key, err)
		return
	}

	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		logger.Debugf("cache set %s: %v", key, err)
	}
}

func (c *Cache) Del(ctx context.Context, key string) {
	if c == nil {
		return
	}

	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		logger.Debugf("cache del %s: %v", key, err)
	}
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
