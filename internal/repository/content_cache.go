package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"fiscalblog/internal/logger"
	"fiscalblog/internal/metrics"
	"fiscalblog/internal/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const contentCachePrefix = "fiscalblog:content:"

// CachedContentStore — cache-aside поверх любого ContentStore.
// Промахи не кэшируются; без клиента Redis работает как прямой прокси.
type CachedContentStore struct {
	next ContentStore
	rdb  *redis.Client
	ttl  time.Duration
}

func NewCachedContentStore(next ContentStore, rdb *redis.Client, ttl time.Duration) *CachedContentStore {
	return &CachedContentStore{next: next, rdb: rdb, ttl: ttl}
}

func (s *CachedContentStore) Load(ctx context.Context, loc, postID string) (*models.LocalizedContent, error) {
	if s.rdb == nil {
		return s.next.Load(ctx, loc, postID)
	}
	key := contentCachePrefix + contentKey(loc, postID)

	raw, err := s.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var c models.LocalizedContent
		if jsonErr := json.Unmarshal(raw, &c); jsonErr == nil {
			metrics.ContentCache.WithLabelValues("hit").Inc()
			return &c, nil
		}
		// битая запись — перечитываем из источника
		metrics.ContentCache.WithLabelValues("error").Inc()
	case errors.Is(err, redis.Nil):
		metrics.ContentCache.WithLabelValues("miss").Inc()
	default:
		metrics.ContentCache.WithLabelValues("error").Inc()
		logger.WithCtx(ctx).Warn("content cache: Redis недоступен, читаем напрямую",
			zap.String("key", key), zap.Error(err))
	}

	c, err := s.next.Load(ctx, loc, postID)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(c); err == nil {
		if err := s.rdb.Set(ctx, key, b, s.ttl).Err(); err != nil {
			logger.WithCtx(ctx).Debug("content cache: не удалось записать", zap.String("key", key), zap.Error(err))
		}
	}
	return c, nil
}

// Flush удаляет все закэшированные тексты. Возвращает число удалённых ключей.
func (s *CachedContentStore) Flush(ctx context.Context) (int, error) {
	if s.rdb == nil {
		return 0, nil
	}
	var (
		cursor  uint64
		removed int
	)
	for {
		keys, next, err := s.rdb.Scan(ctx, cursor, contentCachePrefix+"*", 200).Result()
		if err != nil {
			return removed, err
		}
		if len(keys) > 0 {
			n, err := s.rdb.Del(ctx, keys...).Result()
			if err != nil {
				return removed, err
			}
			removed += int(n)
		}
		if next == 0 {
			return removed, nil
		}
		cursor = next
	}
}
