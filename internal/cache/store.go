// Package cache implements the tiered content cache: a process-wide in-memory
// tier with per-key TTL timers and an optional Redis tier that survives
// restarts. Both tiers share the {data, timestamp, ttl} envelope and the same
// lazy expiry check.
package cache

import (
	"context"
	"time"
)

// Lookup is the outcome of a Get. Callers treat Miss and Degraded alike, but
// the distinction stays inspectable: Degraded means the persistent tier failed
// (connection, serialization) rather than genuinely lacking the entry.
type Lookup int

const (
	Miss Lookup = iota
	Hit
	Degraded
)

// Store is the contract shared by every cache tier.
type Store interface {
	// Set stores data under key, replacing any existing entry in full and
	// restarting its TTL. Storage failures degrade silently.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration)

	// Get returns the payload while now − writeTimestamp ≤ ttl.
	Get(ctx context.Context, key string) ([]byte, Lookup)

	// Delete removes the entry and cancels any pending expiry.
	Delete(ctx context.Context, key string)

	// DeletePrefix removes every entry whose key starts with prefix and
	// returns how many were removed. Used by tag invalidation to clear
	// derived-subset keys.
	DeletePrefix(ctx context.Context, prefix string) int

	// Cleanup sweeps entries whose TTL has silently elapsed. A second line
	// of defense behind eager per-key expiry; returns the number removed.
	Cleanup(ctx context.Context) int
}

// Envelope is the serialized form an entry takes in the persistent tier.
type Envelope struct {
	Data      []byte        `json:"data"`
	Timestamp time.Time     `json:"timestamp"`
	TTL       time.Duration `json:"ttl"`
}

// Expired applies the shared expiry rule.
func (e Envelope) Expired(now time.Time) bool {
	return now.Sub(e.Timestamp) > e.TTL
}

// SweepInterval is how often the background sweep runs.
const SweepInterval = 5 * time.Minute

// StartSweeper runs store.Cleanup on a fixed interval until ctx is done.
func StartSweeper(ctx context.Context, store Store, interval time.Duration) {
	if interval <= 0 {
		interval = SweepInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				store.Cleanup(ctx)
			}
		}
	}()
}
