// Package edge is the boundary-level offline layer: a caching proxy in front
// of the content origin that applies one of two strategies per resource class
// and keeps its entries in named, versioned partitions.
package edge

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"
)

// CachedResponse is one stored copy of a successful origin response, keyed by
// request URL within a partition.
type CachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// PartitionStore persists edge entries. Entries carry no TTL: the only bulk
// eviction path is deleting a whole partition on version activation.
type PartitionStore interface {
	Get(ctx context.Context, partition, key string) (*CachedResponse, bool)
	Put(ctx context.Context, partition, key string, resp *CachedResponse)
	Partitions(ctx context.Context) []string
	DeletePartition(ctx context.Context, partition string) int
}

// MemoryStore keeps partitions in process memory.
type MemoryStore struct {
	mu         sync.Mutex
	partitions map[string]map[string]*CachedResponse
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{partitions: map[string]map[string]*CachedResponse{}}
}

func (s *MemoryStore) Get(ctx context.Context, partition, key string) (*CachedResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp, ok := s.partitions[partition][key]
	return resp, ok
}

func (s *MemoryStore) Put(ctx context.Context, partition, key string, resp *CachedResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.partitions[partition] == nil {
		s.partitions[partition] = map[string]*CachedResponse{}
	}
	s.partitions[partition][key] = resp
}

func (s *MemoryStore) Partitions(ctx context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.partitions))
	for name := range s.partitions {
		names = append(names, name)
	}
	return names
}

func (s *MemoryStore) DeletePartition(ctx context.Context, partition string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := len(s.partitions[partition])
	delete(s.partitions, partition)
	return removed
}

// RedisStore keeps partitions in Redis so edge entries survive restarts.
// Every failure degrades to a miss.
type RedisStore struct {
	client *redis.Client
}

const (
	redisEdgePrefix    = "edge:"
	redisPartitionsKey = "edge:partitions"
)

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) entryKey(partition, key string) string {
	return redisEdgePrefix + partition + ":" + key
}

func (s *RedisStore) Get(ctx context.Context, partition, key string) (*CachedResponse, bool) {
	raw, err := s.client.Get(ctx, s.entryKey(partition, key)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("edge: redis get failed: %v", err)
		}
		return nil, false
	}

	var resp CachedResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		log.Printf("edge: corrupt entry in %s: %v", partition, err)
		return nil, false
	}
	return &resp, true
}

func (s *RedisStore) Put(ctx context.Context, partition, key string, resp *CachedResponse) {
	raw, err := json.Marshal(resp)
	if err != nil {
		log.Printf("edge: marshal failed: %v", err)
		return
	}
	if err := s.client.Set(ctx, s.entryKey(partition, key), raw, 0).Err(); err != nil {
		log.Printf("edge: redis put failed: %v", err)
		return
	}
	if err := s.client.SAdd(ctx, redisPartitionsKey, partition).Err(); err != nil {
		log.Printf("edge: partition index update failed: %v", err)
	}
}

func (s *RedisStore) Partitions(ctx context.Context) []string {
	names, err := s.client.SMembers(ctx, redisPartitionsKey).Result()
	if err != nil {
		log.Printf("edge: partition listing failed: %v", err)
		return nil
	}
	return names
}

func (s *RedisStore) DeletePartition(ctx context.Context, partition string) int {
	removed := 0
	iter := s.client.Scan(ctx, 0, redisEdgePrefix+partition+":*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err == nil {
			removed++
		}
	}
	if err := iter.Err(); err != nil {
		log.Printf("edge: partition scan failed: %v", err)
	}
	if err := s.client.SRem(ctx, redisPartitionsKey, partition).Err(); err != nil {
		log.Printf("edge: partition index removal failed: %v", err)
	}
	return removed
}

// partitionVersion extracts the version suffix from "<class>-<version>".
func partitionVersion(name string) string {
	idx := strings.LastIndex(name, "-")
	if idx < 0 {
		return ""
	}
	return name[idx+1:]
}
