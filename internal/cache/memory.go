package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

type memoryEntry struct {
	data      []byte
	timestamp time.Time
	ttl       time.Duration
	timer     *time.Timer
}

// Memory is the primary in-process tier. Every read-modify-write holds the
// mutex: unlike a single-threaded event loop, overlapping requests here run on
// real OS threads.
type Memory struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
}

func NewMemory() *Memory {
	return &Memory{entries: map[string]*memoryEntry{}}
}

func (m *Memory) Set(ctx context.Context, key string, data []byte, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.entries[key]; ok {
		existing.timer.Stop()
	}

	entry := &memoryEntry{
		data:      data,
		timestamp: time.Now(),
		ttl:       ttl,
	}
	entry.timer = time.AfterFunc(ttl, func() {
		m.expire(key, entry)
	})
	m.entries[key] = entry
}

// expire is the eager path. It only deletes the exact entry the timer was
// armed for, so a timer that fires after its key was overwritten is a no-op.
func (m *Memory) expire(key string, entry *memoryEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if current, ok := m.entries[key]; ok && current == entry {
		delete(m.entries, key)
	}
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, Lookup) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		return nil, Miss
	}

	// Lazy check defends against a missed or stopped timer.
	if time.Since(entry.timestamp) > entry.ttl {
		entry.timer.Stop()
		delete(m.entries, key)
		return nil, Miss
	}

	return entry.data, Hit
}

func (m *Memory) Delete(ctx context.Context, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if entry, ok := m.entries[key]; ok {
		entry.timer.Stop()
		delete(m.entries, key)
	}
}

func (m *Memory) DeletePrefix(ctx context.Context, prefix string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for key, entry := range m.entries {
		if strings.HasPrefix(key, prefix) {
			entry.timer.Stop()
			delete(m.entries, key)
			removed++
		}
	}
	return removed
}

func (m *Memory) Cleanup(ctx context.Context) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	now := time.Now()
	for key, entry := range m.entries {
		if now.Sub(entry.timestamp) > entry.ttl {
			entry.timer.Stop()
			delete(m.entries, key)
			removed++
		}
	}
	return removed
}

// Len reports the number of live entries. Test helper.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
