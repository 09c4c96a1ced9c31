package cache

import (
	"context"
	"time"
)

// Content cache keys and TTL policy. Derived subsets are keyed under the
// artworks prefix so tag invalidation clears them in one sweep.
const (
	KeyArtworks = "artworks"
	KeyArtist   = "artist"
	KeyFeatured = "artworks:featured"

	PrefixArtworks = "artworks"

	TTLArtworks = 5 * time.Minute
	TTLArtist   = time.Hour
	TTLDerived  = 10 * time.Minute
)

// KeyByTag addresses the cached subset for one free-text tag.
func KeyByTag(tag string) string {
	return "artworks:tag:" + tag
}

// Tiered fans operations out across its tiers in order: reads stop at the
// first hit, writes and deletes touch every tier.
type Tiered struct {
	tiers []Store
}

func NewTiered(tiers ...Store) *Tiered {
	return &Tiered{tiers: tiers}
}

func (t *Tiered) Set(ctx context.Context, key string, data []byte, ttl time.Duration) {
	for _, tier := range t.tiers {
		tier.Set(ctx, key, data, ttl)
	}
}

func (t *Tiered) Get(ctx context.Context, key string) ([]byte, Lookup) {
	result := Miss
	for _, tier := range t.tiers {
		data, lookup := tier.Get(ctx, key)
		if lookup == Hit {
			return data, Hit
		}
		if lookup == Degraded {
			result = Degraded
		}
	}
	return nil, result
}

func (t *Tiered) Delete(ctx context.Context, key string) {
	for _, tier := range t.tiers {
		tier.Delete(ctx, key)
	}
}

func (t *Tiered) DeletePrefix(ctx context.Context, prefix string) int {
	removed := 0
	for _, tier := range t.tiers {
		removed += tier.DeletePrefix(ctx, prefix)
	}
	return removed
}

func (t *Tiered) Cleanup(ctx context.Context) int {
	removed := 0
	for _, tier := range t.tiers {
		removed += tier.Cleanup(ctx)
	}
	return removed
}
