package cache

import (
	"context"
	"sync"

	"github.com/aserravalle/travelling-salesman-backend/internal/ports"
)

// MemoryGeocodeCache is a lock-guarded in-process cache. It is the
// default backend when no Postgres or Redis is configured; concurrent
// dispatch calls share it safely.
type MemoryGeocodeCache struct {
	mu sync.RWMutex
	m  map[string]ports.GeocodeResult
}

func NewMemoryGeocodeCache() *MemoryGeocodeCache {
	return &MemoryGeocodeCache{m: make(map[string]ports.GeocodeResult)}
}

func (c *MemoryGeocodeCache) Get(ctx context.Context, address string) (ports.GeocodeResult, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res, ok := c.m[address]
	return res, ok, nil
}

func (c *MemoryGeocodeCache) Put(ctx context.Context, address string, result ports.GeocodeResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[address] = result
	return nil
}
