package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aserravalle/travelling-salesman-backend/internal/platform/obs"
	"github.com/aserravalle/travelling-salesman-backend/internal/ports"
)

const redisKeyPrefix = "geocode:"

// RedisGeocodeCache stores geocode results as JSON values in Redis so
// multiple service instances share one cache.
type RedisGeocodeCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisGeocodeCache(addr, password string, db int) *RedisGeocodeCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	return &RedisGeocodeCache{Client: rdb, TTL: 30 * 24 * time.Hour}
}

// Ping verifies the Redis connection.
func (c *RedisGeocodeCache) Ping(ctx context.Context) error {
	if err := c.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis geocode cache ping: %w", err)
	}
	return nil
}

func (c *RedisGeocodeCache) Close() error {
	if c.Client != nil {
		return c.Client.Close()
	}
	return nil
}

func (c *RedisGeocodeCache) Get(ctx context.Context, address string) (_ ports.GeocodeResult, _ bool, err error) {
	defer obs.Time(ctx, "geocode.cache.redis.Get")(&err)

	raw, err := c.Client.Get(ctx, redisKeyPrefix+address).Result()
	if errors.Is(err, redis.Nil) {
		return ports.GeocodeResult{}, false, nil
	}
	if err != nil {
		return ports.GeocodeResult{}, false, fmt.Errorf("get redis geocode cache: %w", err)
	}

	var res ports.GeocodeResult
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return ports.GeocodeResult{}, false, fmt.Errorf("get redis geocode cache: decode value: %w", err)
	}
	return res, true, nil
}

func (c *RedisGeocodeCache) Put(ctx context.Context, address string, result ports.GeocodeResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("put redis geocode cache: encode value: %w", err)
	}
	if err := c.Client.Set(ctx, redisKeyPrefix+address, raw, c.TTL).Err(); err != nil {
		return fmt.Errorf("put redis geocode cache: %w", err)
	}
	return nil
}
