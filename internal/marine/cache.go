// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package marine

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/wneessen/waybar-surf/internal/surf"
)

// coordPrecision is the precision used to quantize coordinates (0.01 degrees ≈ 1.1 km)
const coordPrecision = 1e-2

type cacheKey struct {
	LatQ int32
	LonQ int32
}

type cacheEntry struct {
	Series *surf.RawSeries
	Expiry time.Time
}

// CachedProvider serves repeated requests for the same location from memory until the entry
// expires. Failed requests are never cached.
type CachedProvider struct {
	provider Provider
	ttl      time.Duration

	mu    sync.RWMutex
	cache map[cacheKey]cacheEntry
}

func NewCachedProvider(provider Provider, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		provider: provider,
		ttl:      ttl,
		cache:    make(map[cacheKey]cacheEntry),
	}
}

func (c *CachedProvider) Name() string {
	return c.provider.Name()
}

func (c *CachedProvider) GetSeries(ctx context.Context, loc surf.Location) (*surf.RawSeries, error) {
	key := newKey(loc)

	c.mu.RLock()
	entry, ok := c.cache[key]
	c.mu.RUnlock()
	if ok && time.Now().Before(entry.Expiry) {
		return entry.Series, nil
	}

	series, err := c.provider.GetSeries(ctx, loc)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[key] = cacheEntry{
		Series: series,
		Expiry: time.Now().Add(c.ttl),
	}
	return series, nil
}

func quantizeCoord(val float64) int32 {
	return int32(math.Round(val / coordPrecision))
}

func newKey(loc surf.Location) cacheKey {
	return cacheKey{
		LatQ: quantizeCoord(loc.Latitude),
		LonQ: quantizeCoord(loc.Longitude),
	}
}
