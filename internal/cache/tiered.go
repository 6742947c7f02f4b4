package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"geo-rd/internal/metrics"

	"github.com/redis/go-redis/v9"
)

// Store：响应缓存接口，api 层只依赖此接口
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
}

// Tiered：LRU 在前、Redis 在后的两级缓存
// 约束：rc 为 nil 时仅使用 LRU；Redis 读写错误记日志并视为未命中，不阻断查询。
type Tiered struct {
	lru *LRU
	rc  *redis.Client
	ttl time.Duration
	l   *slog.Logger
}

func NewTiered(lru *LRU, rc *redis.Client, ttl time.Duration, l *slog.Logger) *Tiered {
	return &Tiered{lru: lru, rc: rc, ttl: ttl, l: l}
}

func (t *Tiered) Get(ctx context.Context, key string) ([]byte, bool) {
	if v, ok := t.lru.Get(key); ok {
		metrics.CacheHitsTotal.WithLabelValues("lru").Inc()
		return v, true
	}
	if t.rc != nil {
		v, err := t.rc.Get(ctx, key).Bytes()
		switch {
		case err == nil:
			metrics.CacheHitsTotal.WithLabelValues("redis").Inc()
			t.lru.Set(key, v)
			return v, true
		case !errors.Is(err, redis.Nil):
			metrics.CacheErrorsTotal.Inc()
			t.l.Warn("redis_get_error", "key", key, "err", err)
		}
	}
	metrics.CacheMissesTotal.Inc()
	return nil, false
}

func (t *Tiered) Set(ctx context.Context, key string, value []byte) {
	t.lru.Set(key, value)
	if t.rc == nil {
		return
	}
	if err := t.rc.Set(ctx, key, value, t.ttl).Err(); err != nil {
		metrics.CacheErrorsTotal.Inc()
		t.l.Warn("redis_set_error", "key", key, "err", err)
	}
}
