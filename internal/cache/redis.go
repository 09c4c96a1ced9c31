package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is the optional persistent tier. Entries survive process restarts.
// Any connection or serialization failure degrades to a miss: the read path
// must never fail because the durable tier is unhealthy.
type Redis struct {
	client *redis.Client
	prefix string
}

func NewRedis(client *redis.Client, prefix string) *Redis {
	if prefix == "" {
		prefix = "catalog:"
	}
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) key(key string) string {
	return r.prefix + key
}

func (r *Redis) Set(ctx context.Context, key string, data []byte, ttl time.Duration) {
	envelope, err := json.Marshal(Envelope{
		Data:      data,
		Timestamp: time.Now(),
		TTL:       ttl,
	})
	if err != nil {
		log.Printf("cache: redis marshal failed for %s: %v", key, err)
		return
	}

	// Redis expires the key itself; the envelope timestamp backs the same
	// lazy check on read in case server TTLs were flushed.
	if err := r.client.Set(ctx, r.key(key), envelope, ttl).Err(); err != nil {
		log.Printf("cache: redis set failed for %s: %v", key, err)
	}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, Lookup) {
	raw, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err == redis.Nil {
		return nil, Miss
	}
	if err != nil {
		log.Printf("cache: redis get failed for %s: %v", key, err)
		return nil, Degraded
	}

	var envelope Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		log.Printf("cache: redis entry for %s is corrupt: %v", key, err)
		return nil, Degraded
	}

	if envelope.Expired(time.Now()) {
		r.Delete(ctx, key)
		return nil, Miss
	}

	return envelope.Data, Hit
}

func (r *Redis) Delete(ctx context.Context, key string) {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		log.Printf("cache: redis delete failed for %s: %v", key, err)
	}
}

func (r *Redis) DeletePrefix(ctx context.Context, prefix string) int {
	removed := 0
	iter := r.client.Scan(ctx, 0, r.key(prefix)+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			log.Printf("cache: redis delete failed for %s: %v", iter.Val(), err)
			continue
		}
		removed++
	}
	if err := iter.Err(); err != nil {
		log.Printf("cache: redis scan failed for prefix %s: %v", prefix, err)
	}
	return removed
}

// Cleanup removes entries whose envelope TTL elapsed even though the server
// key still exists (clock skew, restored dumps).
func (r *Redis) Cleanup(ctx context.Context) int {
	removed := 0
	now := time.Now()

	iter := r.client.Scan(ctx, 0, r.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		raw, err := r.client.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			continue
		}
		var envelope Envelope
		if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Expired(now) {
			if err := r.client.Del(ctx, iter.Val()).Err(); err == nil {
				removed++
			}
		}
	}
	if err := iter.Err(); err != nil {
		log.Printf("cache: redis cleanup scan failed: %v", err)
	}
	return removed
}
