package edge

import (
	"context"
	"io"
	"log"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type strategy int

const (
	cacheFirst strategy = iota
	networkFirst
)

type resourceClass int

const (
	classImage resourceClass = iota
	classStatic
	classNavigation
	classOther
)

// Cache proxies content requests to the origin, applying cache-first to
// images and static assets and network-first to navigations and everything
// else, so the site stays browsable when the origin is unreachable.
type Cache struct {
	store   PartitionStore
	origin  string
	version string
	client  *http.Client
}

func New(store PartitionStore, origin, version string) *Cache {
	return &Cache{
		store:   store,
		origin:  strings.TrimSuffix(origin, "/"),
		version: version,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Activate deletes every partition whose version does not match the current
// one. Runs once at startup, mirroring a new release taking over.
func (e *Cache) Activate(ctx context.Context) {
	for _, name := range e.store.Partitions(ctx) {
		if partitionVersion(name) != e.version {
			removed := e.store.DeletePartition(ctx, name)
			log.Printf("edge: dropped stale partition %s (%d entries)", name, removed)
		}
	}
}

var staticExtensions = map[string]bool{
	".css": true, ".js": true, ".json": true,
	".woff": true, ".woff2": true, ".ttf": true,
	".ico": true, ".txt": true, ".xml": true,
}

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	".webp": true, ".avif": true, ".svg": true,
}

func classify(requestPath, accept string) resourceClass {
	ext := strings.ToLower(path.Ext(requestPath))
	switch {
	case imageExtensions[ext] || strings.HasPrefix(requestPath, "/images/"):
		return classImage
	case staticExtensions[ext]:
		return classStatic
	case strings.Contains(accept, "text/html"):
		return classNavigation
	default:
		return classOther
	}
}

func (e *Cache) partitionFor(class resourceClass) string {
	switch class {
	case classImage:
		return "images-" + e.version
	case classStatic:
		return "static-" + e.version
	default:
		return "pages-" + e.version
	}
}

func strategyFor(class resourceClass) strategy {
	if class == classImage || class == classStatic {
		return cacheFirst
	}
	return networkFirst
}

// ------------------------------
// GET /edge/*path
// ------------------------------
func (e *Cache) Serve(c *gin.Context) {
	requestPath := c.Param("path")
	if requestPath == "" || requestPath == "/" {
		requestPath = "/"
	}

	class := classify(requestPath, c.GetHeader("Accept"))
	partition := e.partitionFor(class)

	switch strategyFor(class) {
	case cacheFirst:
		e.serveCacheFirst(c, partition, requestPath, class)
	default:
		e.serveNetworkFirst(c, partition, requestPath, class)
	}
}

func (e *Cache) serveCacheFirst(c *gin.Context, partition, requestPath string, class resourceClass) {
	ctx := c.Request.Context()

	if cached, ok := e.store.Get(ctx, partition, requestPath); ok {
		respond(c, cached)
		return
	}

	fetched, err := e.fetch(ctx, requestPath)
	if err == nil {
		e.store.Put(ctx, partition, requestPath, fetched)
		respond(c, fetched)
		return
	}

	log.Printf("edge: cache-first total miss for %s: %v", requestPath, err)
	if class == classImage {
		c.Data(http.StatusOK, "image/svg+xml", []byte(placeholderImage))
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": "Asset unavailable"})
}

func (e *Cache) serveNetworkFirst(c *gin.Context, partition, requestPath string, class resourceClass) {
	ctx := c.Request.Context()

	fetched, err := e.fetch(ctx, requestPath)
	if err == nil {
		e.store.Put(ctx, partition, requestPath, fetched)
		respond(c, fetched)
		return
	}

	if cached, ok := e.store.Get(ctx, partition, requestPath); ok {
		respond(c, cached)
		return
	}

	log.Printf("edge: network-first double miss for %s: %v", requestPath, err)
	if class == classNavigation {
		c.Data(http.StatusServiceUnavailable, "text/html; charset=utf-8", []byte(offlinePage))
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": "Content unavailable"})
}

// fetch proxies one request to the origin. Only successful responses are
// returned, so only successful responses are ever cached.
func (e *Cache) fetch(ctx context.Context, requestPath string) (*CachedResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.origin+requestPath, nil)
	if err != nil {
		return nil, err
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &originError{status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &CachedResponse{
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

type originError struct {
	status int
}

func (e *originError) Error() string {
	return "origin returned " + http.StatusText(e.status)
}

func respond(c *gin.Context, resp *CachedResponse) {
	contentType := resp.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Data(resp.Status, contentType, resp.Body)
}
