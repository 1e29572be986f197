package utils

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"resumatch-utils/internal/config"
	"resumatch-utils/internal/logging"
)

// ResultCache is an optional short-TTL cache for parse and comparison
// results, keyed by a digest of the request text. It is purely an
// optimization: every failure mode degrades to a cache miss, never to a
// request error.
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logging.Logger
}

// NewResultCache creates the cache from configuration. It returns nil
// when caching is disabled; a nil *ResultCache is safe to call.
func NewResultCache(cfg *config.Config) *ResultCache {
	if !cfg.Redis.Enabled {
		return nil
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		opts = &redis.Options{
			Addr:     "localhost:6379",
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}
	}
	opts.DialTimeout = cfg.Redis.Timeout
	opts.ReadTimeout = cfg.Redis.Timeout
	opts.WriteTimeout = cfg.Redis.Timeout

	return &ResultCache{
		client: redis.NewClient(opts),
		ttl:    cfg.Redis.CacheTTL,
		logger: logging.GetGlobalLogger(),
	}
}

// CacheKey derives the cache key for a namespaced request payload
func CacheKey(namespace string, parts ...string) string {
	digest := sha256.New()
	for _, part := range parts {
		digest.Write([]byte(part))
		digest.Write([]byte{0})
	}
	return namespace + ":" + hex.EncodeToString(digest.Sum(nil))
}

// Get loads a cached result into out. It reports false on miss, on a
// redis outage and on a decode failure; the caller recomputes in every
// case.
func (c *ResultCache) Get(ctx context.Context, key string, out interface{}) bool {
	if c == nil {
		return false
	}

	payload, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("Result cache read failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		return false
	}

	if err := json.Unmarshal([]byte(payload), out); err != nil {
		c.logger.Debug("Result cache entry was not decodable, ignoring", map[string]interface{}{
			"key": key,
		})
		return false
	}
	return true
}

// Set stores a result under the configured TTL. Failures are logged and
// swallowed.
func (c *ResultCache) Set(ctx context.Context, key string, value interface{}) {
	if c == nil {
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Debug("Result cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

// Ping tests the connection
func (c *ResultCache) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

// Close closes the underlying connection
func (c *ResultCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
