// Package cache кеш списков парковок поверх Redis.
// Кеш опциональный: при недоступности Redis сервис работает напрямую с БД.
package cache

import (
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/smartpark/SP-BookingService/internal/domain"
	"github.com/smartpark/SP-BookingService/pkg/ptr"
)

const keyPrefix = "spaces"

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// SpaceCache кеш списков парковок
type SpaceCache struct {
	client *redis.Client
	ttl    time.Duration
	log    Logger
}

// New создает кеш парковок. client может быть nil - тогда все операции no-op.
func New(client *redis.Client, ttl time.Duration, log Logger) *SpaceCache {
	return &SpaceCache{client: client, ttl: ttl, log: log}
}

// Key строит стабильный ключ кеша из фильтра списка
func Key(filter domain.SpacesFilter) string {
	raw := fmt.Sprintf("city=%s|area=%s|street=%s|q=%s|inactive=%t",
		ptr.Value(filter.City),
		ptr.Value(filter.Area),
		ptr.Value(filter.Street),
		ptr.Value(filter.Keyword),
		filter.IncludeInactive,
	)
	sum := sha1.Sum([]byte(raw))
	return fmt.Sprintf("%s:%x", keyPrefix, sum[:])
}

// Get возвращает закешированный список парковок.
// Второй результат false означает cache miss (или выключенный кеш).
func (c *SpaceCache) Get(ctx context.Context, key string) ([]*domain.ParkingSpace, bool) {
	if c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.log.Warn("cache: get failed for %s: %v", key, err)
		return nil, false
	}

	var spaces []*domain.ParkingSpace
	if err := json.Unmarshal(raw, &spaces); err != nil {
		c.log.Warn("cache: unmarshal failed for %s: %v", key, err)
		return nil, false
	}

	return spaces, true
}

// Set сохраняет список парковок в кеш с настроенным TTL
func (c *SpaceCache) Set(ctx context.Context, key string, spaces []*domain.ParkingSpace) {
	if c.client == nil {
		return
	}

	raw, err := json.Marshal(spaces)
	if err != nil {
		c.log.Warn("cache: marshal failed for %s: %v", key, err)
		return
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn("cache: set failed for %s: %v", key, err)
	}
}

// Invalidate сбрасывает все закешированные списки парковок.
// Вызывается при любой мутации инвентаря.
func (c *SpaceCache) Invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}

	iter := c.client.Scan(ctx, 0, keyPrefix+":*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			c.log.Warn("cache: delete failed for %s: %v", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		c.log.Warn("cache: scan failed: %v", err)
	}
}
