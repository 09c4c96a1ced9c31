package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_GetReturnsWhileFresh(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	m.Set(ctx, "artworks", []byte(`["a"]`), time.Hour)

	data, lookup := m.Get(ctx, "artworks")
	assert.Equal(t, Hit, lookup)
	assert.Equal(t, []byte(`["a"]`), data)
}

func TestMemory_ExpiryIsIdempotent(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	m.Set(ctx, "artworks", []byte(`["a"]`), 20*time.Millisecond)

	time.Sleep(50 * time.Millisecond)

	_, lookup := m.Get(ctx, "artworks")
	assert.Equal(t, Miss, lookup)

	// After expiry every read stays a miss.
	_, lookup = m.Get(ctx, "artworks")
	assert.Equal(t, Miss, lookup)
	assert.Equal(t, 0, m.Len())
}

func TestMemory_LazyExpiryWithoutTimer(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	// Plant an already-expired entry directly, simulating a missed timer.
	m.mu.Lock()
	m.entries["stale"] = &memoryEntry{
		data:      []byte("x"),
		timestamp: time.Now().Add(-time.Hour),
		ttl:       time.Minute,
		timer:     time.NewTimer(time.Hour),
	}
	m.mu.Unlock()

	_, lookup := m.Get(ctx, "stale")
	assert.Equal(t, Miss, lookup)
	assert.Equal(t, 0, m.Len())
}

func TestMemory_OverwriteReplacesEntryAndTTL(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	m.Set(ctx, "artworks", []byte("A"), 30*time.Millisecond)
	m.Set(ctx, "artworks", []byte("B"), time.Hour)

	// Past the first TTL the second write must still be live: the overwrite
	// cancelled the first timer and restarted the clock.
	time.Sleep(60 * time.Millisecond)

	data, lookup := m.Get(ctx, "artworks")
	require.Equal(t, Hit, lookup)
	assert.Equal(t, []byte("B"), data)
}

func TestMemory_DeleteCancelsTimer(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	m.Set(ctx, "artist", []byte("x"), time.Hour)
	m.Delete(ctx, "artist")

	_, lookup := m.Get(ctx, "artist")
	assert.Equal(t, Miss, lookup)
}

func TestMemory_DeletePrefix(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	m.Set(ctx, "artworks", []byte("all"), time.Hour)
	m.Set(ctx, "artworks:featured", []byte("f"), time.Hour)
	m.Set(ctx, "artworks:tag:urban", []byte("t"), time.Hour)
	m.Set(ctx, "artist", []byte("a"), time.Hour)

	removed := m.DeletePrefix(ctx, "artworks")
	assert.Equal(t, 3, removed)

	_, lookup := m.Get(ctx, "artist")
	assert.Equal(t, Hit, lookup)
}

func TestMemory_CleanupSweepsSilentlyExpired(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	m.mu.Lock()
	m.entries["stale"] = &memoryEntry{
		data:      []byte("x"),
		timestamp: time.Now().Add(-time.Hour),
		ttl:       time.Minute,
		timer:     time.NewTimer(time.Hour),
	}
	m.mu.Unlock()
	m.Set(ctx, "fresh", []byte("y"), time.Hour)

	removed := m.Cleanup(ctx)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, m.Len())
}

func TestTiered_ReadsStopAtFirstHit(t *testing.T) {
	ctx := context.Background()
	primary := NewMemory()
	secondary := NewMemory()
	tiered := NewTiered(primary, secondary)

	secondary.Set(ctx, "artist", []byte("bio"), time.Hour)

	data, lookup := tiered.Get(ctx, "artist")
	require.Equal(t, Hit, lookup)
	assert.Equal(t, []byte("bio"), data)

	tiered.Set(ctx, "artworks", []byte("all"), time.Hour)

	_, lookup = primary.Get(ctx, "artworks")
	assert.Equal(t, Hit, lookup)
	_, lookup = secondary.Get(ctx, "artworks")
	assert.Equal(t, Hit, lookup)

	tiered.Delete(ctx, "artworks")
	assert.Equal(t, 0, primary.DeletePrefix(ctx, "artworks"))
}
