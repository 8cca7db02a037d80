package geocode

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aserravalle/travelling-salesman-backend/internal/ports"
)

// CachedGeocoder is a read-through cache in front of another geocoder.
// The cache is shared across dispatch calls; cache population is a side
// effect independent of dispatch ordering, so a write failure only logs.
type CachedGeocoder struct {
	next  ports.Geocoder
	cache ports.GeocodeCache
}

func NewCachedGeocoder(next ports.Geocoder, cache ports.GeocodeCache) *CachedGeocoder {
	return &CachedGeocoder{next: next, cache: cache}
}

func (c *CachedGeocoder) Geocode(ctx context.Context, address string) (ports.GeocodeResult, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return ports.GeocodeResult{}, fmt.Errorf("cached geocode: address must not be empty")
	}

	res, ok, err := c.cache.Get(ctx, address)
	if err != nil {
		// A broken cache degrades to the backing geocoder.
		log.Printf("geocode cache read failed: addr=%q err=%v", address, err)
	} else if ok {
		return res, nil
	}

	res, err = c.next.Geocode(ctx, address)
	if err != nil {
		return ports.GeocodeResult{}, err
	}

	if err := c.cache.Put(ctx, address, res); err != nil {
		log.Printf("geocode cache write failed: addr=%q err=%v", address, err)
	}
	return res, nil
}
