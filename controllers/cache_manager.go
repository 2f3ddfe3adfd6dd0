package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	CatalogListCachePrefix = "catalog:list:v:"
	CacheVersionKey        = "catalog:version"
)

// CacheManager handles Redis caching of catalog list responses. Invalidation
// bumps a shared version so every cached list falls out at once after an
// import or a collection mutation.
type CacheManager struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCacheManager(redis *redis.Client) *CacheManager {
	return &CacheManager{
		redis: redis,
		ttl:   DefaultCacheTTL,
	}
}

// GetList retrieves a cached list response by kind.
func (cm *CacheManager) GetList(ctx context.Context, kind string) (json.RawMessage, bool) {
	version, err := cm.getCacheVersion(ctx)
	if err != nil || version == 0 {
		return nil, false
	}

	cached, err := cm.redis.Get(ctx, cm.listCacheKey(version, kind)).Result()
	if err != nil {
		return nil, false
	}
	return json.RawMessage(cached), true
}

// SetListAsync caches a list response without blocking the request.
func (cm *CacheManager) SetListAsync(kind string, response interface{}) {
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		version, err := cm.getCacheVersion(bgCtx)
		if err != nil || version == 0 {
			return
		}

		jsonBytes, err := json.Marshal(response)
		if err != nil {
			zap.L().Warn("Failed to marshal list for cache", zap.Error(err), zap.String("kind", kind))
			return
		}

		if err := cm.redis.Set(bgCtx, cm.listCacheKey(version, kind), jsonBytes, cm.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache list", zap.Error(err), zap.String("kind", kind))
		}
	}()
}

// Invalidate invalidates all catalog caches by bumping the version.
func (cm *CacheManager) Invalidate(ctx context.Context) error {
	newVersion, err := cm.redis.Incr(ctx, CacheVersionKey).Result()
	if err != nil {
		return fmt.Errorf("failed to invalidate cache: %w", err)
	}

	zap.L().Info("Catalog cache invalidated", zap.Int64("new_version", newVersion))
	return nil
}

// getCacheVersion retrieves the current cache version with retry logic.
func (cm *CacheManager) getCacheVersion(ctx context.Context) (int64, error) {
	const maxRetries = 3

	for i := 0; i < maxRetries; i++ {
		ver, err := cm.redis.Get(ctx, CacheVersionKey).Int64()
		if err == nil && ver > 0 {
			return ver, nil
		}

		if err == redis.Nil {
			if err := cm.redis.Set(ctx, CacheVersionKey, 1, 0).Err(); err == nil {
				return 1, nil
			}
		}

		if i < maxRetries-1 {
			time.Sleep(time.Millisecond * 50)
		}
	}

	return 0, fmt.Errorf("failed to get cache version after %d retries", maxRetries)
}

func (cm *CacheManager) listCacheKey(version int64, kind string) string {
	return fmt.Sprintf("%s%d:%s", CatalogListCachePrefix, version, kind)
}
