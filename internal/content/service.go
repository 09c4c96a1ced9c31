package content

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"portfolio-backend/internal/cache"
	"portfolio-backend/internal/domain/artist"
	"portfolio-backend/internal/domain/works"
	"portfolio-backend/internal/infra/airtable"
	"portfolio-backend/internal/infra/retry"
	"portfolio-backend/internal/infra/snapshot"

	"github.com/jmgilman/go/errors"
	"golang.org/x/sync/singleflight"
)

const (
	artworksTable = "Artworks"
	artistTable   = "Artist"
)

// ClientProvider hands out the shared remote client handle.
type ClientProvider interface {
	Client() (*airtable.Client, error)
}

// Service is the fetch orchestrator and the error boundary for the whole read
// path: its Fetch methods always return usable data — live, cached, snapshot
// or bundled fallback — and never an error.
type Service struct {
	cache     cache.Store
	provider  ClientProvider
	retry     *retry.Executor
	validator *Validator
	snapshots *snapshot.Store // optional, may be nil

	// Concurrent misses for the same key share one remote call.
	group singleflight.Group
}

func NewService(store cache.Store, provider ClientProvider, executor *retry.Executor, validator *Validator, snapshots *snapshot.Store) *Service {
	return &Service{
		cache:     store,
		provider:  provider,
		retry:     executor,
		validator: validator,
		snapshots: snapshots,
	}
}

// FetchArtworks returns the full catalog collection.
func (s *Service) FetchArtworks(ctx context.Context) []works.Artwork {
	if cached, ok := getCached[[]works.Artwork](ctx, s.cache, cache.KeyArtworks); ok {
		return cached
	}

	result, _, _ := s.group.Do(cache.KeyArtworks, func() (any, error) {
		return s.syncArtworks(ctx), nil
	})
	return result.([]works.Artwork)
}

// FetchArtist returns the single profile record.
func (s *Service) FetchArtist(ctx context.Context) artist.Artist {
	if cached, ok := getCached[artist.Artist](ctx, s.cache, cache.KeyArtist); ok {
		return cached
	}

	result, _, _ := s.group.Do(cache.KeyArtist, func() (any, error) {
		return s.syncArtist(ctx), nil
	})
	return result.(artist.Artist)
}

// FetchFeatured returns the featured subset, cached under its own key and TTL.
func (s *Service) FetchFeatured(ctx context.Context) []works.Artwork {
	if cached, ok := getCached[[]works.Artwork](ctx, s.cache, cache.KeyFeatured); ok {
		return cached
	}

	featured := []works.Artwork{}
	for _, a := range s.FetchArtworks(ctx) {
		if a.Featured {
			featured = append(featured, a)
		}
	}

	s.putCached(ctx, cache.KeyFeatured, featured, cache.TTLDerived)
	return featured
}

// FetchByTag returns the artworks carrying the given free-text tag.
func (s *Service) FetchByTag(ctx context.Context, tag string) []works.Artwork {
	key := cache.KeyByTag(strings.ToLower(tag))
	if cached, ok := getCached[[]works.Artwork](ctx, s.cache, key); ok {
		return cached
	}

	matched := []works.Artwork{}
	for _, a := range s.FetchArtworks(ctx) {
		for _, t := range a.Tags {
			if strings.EqualFold(t, tag) {
				matched = append(matched, a)
				break
			}
		}
	}

	s.putCached(ctx, key, matched, cache.TTLDerived)
	return matched
}

// FetchBySlug finds one artwork by its unique slug.
func (s *Service) FetchBySlug(ctx context.Context, slug string) (works.Artwork, bool) {
	for _, a := range s.FetchArtworks(ctx) {
		if a.Slug == slug {
			return a, true
		}
	}
	return works.Artwork{}, false
}

// Invalidate clears the cache partition for a content tag, forcing the next
// fetch past the cache even though its TTL has not elapsed.
func (s *Service) Invalidate(ctx context.Context, tag string) error {
	switch tag {
	case "artworks":
		removed := s.cache.DeletePrefix(ctx, cache.PrefixArtworks)
		log.Printf("content: invalidated %q (%d entries)", tag, removed)
		return nil
	case "artist":
		s.cache.Delete(ctx, cache.KeyArtist)
		log.Printf("content: invalidated %q", tag)
		return nil
	default:
		return errors.Newf(errors.CodeInvalidInput, "unknown content tag %q", tag)
	}
}

// syncArtworks runs the full miss path: remote fetch with pagination and
// retries, normalize, validate, cache write. All failures collapse into the
// fallback chain.
func (s *Service) syncArtworks(ctx context.Context) []works.Artwork {
	client, err := s.provider.Client()
	if err != nil {
		log.Printf("content: remote client unavailable: %v", err)
		return s.artworksFallback(ctx)
	}

	raw, err := s.fetchAll(ctx, client, airtable.Query{
		Table:         artworksTable,
		SortField:     "year",
		SortDirection: "desc",
	})
	if err != nil {
		log.Printf("content: artworks fetch failed: %v", err)
		return s.artworksFallback(ctx)
	}

	normalized := make([]works.Artwork, 0, len(raw))
	for _, rec := range raw {
		a, err := NormalizeArtwork(rec)
		if err != nil {
			log.Printf("content: skipping artwork: %v", err)
			continue
		}
		normalized = append(normalized, a)
	}

	valid := s.validator.Artworks(normalized)
	if len(valid) == 0 {
		log.Printf("content: remote returned no valid artworks")
		return s.artworksFallback(ctx)
	}

	if data, err := json.Marshal(valid); err == nil {
		s.cache.Set(ctx, cache.KeyArtworks, data, cache.TTLArtworks)
		if s.snapshots != nil {
			s.snapshots.Save(ctx, cache.KeyArtworks, data)
		}
	}

	return valid
}

func (s *Service) syncArtist(ctx context.Context) artist.Artist {
	client, err := s.provider.Client()
	if err != nil {
		log.Printf("content: remote client unavailable: %v", err)
		return s.artistFallback(ctx)
	}

	raw, err := s.fetchAll(ctx, client, airtable.Query{Table: artistTable, PageSize: 1})
	if err != nil {
		log.Printf("content: artist fetch failed: %v", err)
		return s.artistFallback(ctx)
	}
	if len(raw) == 0 {
		log.Printf("content: remote has no artist profile")
		return s.artistFallback(ctx)
	}

	profile, ok := s.validator.Artist(NormalizeArtist(raw[0]))
	if !ok {
		return s.artistFallback(ctx)
	}

	if data, err := json.Marshal(profile); err == nil {
		s.cache.Set(ctx, cache.KeyArtist, data, cache.TTLArtist)
		if s.snapshots != nil {
			s.snapshots.Save(ctx, cache.KeyArtist, data)
		}
	}

	return profile
}

// fetchAll follows continuation cursors until the table is exhausted. Each
// page gets its own retry budget.
func (s *Service) fetchAll(ctx context.Context, client *airtable.Client, q airtable.Query) ([]airtable.Record, error) {
	var all []airtable.Record
	offset := ""

	for {
		var page []airtable.Record
		var next string

		err := s.retry.Do(ctx, q.Table, func(ctx context.Context) error {
			var err error
			page, next, err = client.ListPage(ctx, q, offset)
			return err
		})
		if err != nil {
			return nil, err
		}

		all = append(all, page...)
		if next == "" {
			return all, nil
		}
		offset = next
	}
}

func (s *Service) artworksFallback(ctx context.Context) []works.Artwork {
	if s.snapshots != nil {
		if data, ok := s.snapshots.Load(ctx, cache.KeyArtworks); ok {
			var saved []works.Artwork
			if err := json.Unmarshal(data, &saved); err == nil && len(saved) > 0 {
				return saved
			}
		}
	}
	return FallbackArtworks()
}

func (s *Service) artistFallback(ctx context.Context) artist.Artist {
	if s.snapshots != nil {
		if data, ok := s.snapshots.Load(ctx, cache.KeyArtist); ok {
			var saved artist.Artist
			if err := json.Unmarshal(data, &saved); err == nil && saved.ID != "" {
				return saved
			}
		}
	}
	return FallbackArtist()
}

func getCached[T any](ctx context.Context, store cache.Store, key string) (T, bool) {
	var out T
	data, lookup := store.Get(ctx, key)
	if lookup != cache.Hit {
		return out, false
	}
	if err := json.Unmarshal(data, &out); err != nil {
		log.Printf("content: corrupt cache entry for %s: %v", key, err)
		return out, false
	}
	return out, true
}

func (s *Service) putCached(ctx context.Context, key string, value any, ttl time.Duration) {
	if data, err := json.Marshal(value); err == nil {
		s.cache.Set(ctx, key, data, ttl)
	}
}
