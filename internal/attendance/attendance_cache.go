package attendance

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const pendingCacheKey = "attendance:pending"

// pendingCache menyimpan hasil query pending-approval di Redis. Daftar ini
// dibaca admin berulang-ulang tapi hanya berubah saat ada check-in/check-out
// atau approval, jadi read-through cache dengan invalidasi eksplisit cukup.
type pendingCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func newPendingCache(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *pendingCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &pendingCache{rdb: rdb, ttl: ttl, logger: logger}
}

func (c *pendingCache) get(ctx context.Context) ([]PendingResponse, bool) {
	if c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, pendingCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("pending cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var rows []PendingResponse
	if err := json.Unmarshal(raw, &rows); err != nil {
		c.logger.Warn("pending cache payload corrupt", zap.Error(err))
		return nil, false
	}
	return rows, true
}

func (c *pendingCache) set(ctx context.Context, rows []PendingResponse) {
	if c.rdb == nil {
		return
	}

	raw, err := json.Marshal(rows)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, pendingCacheKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("pending cache write failed", zap.Error(err))
	}
}

func (c *pendingCache) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, pendingCacheKey).Err(); err != nil {
		c.logger.Warn("pending cache invalidate failed", zap.Error(err))
	}
}
