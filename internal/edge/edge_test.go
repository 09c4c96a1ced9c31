package edge

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEdgeRouter(store PartitionStore, origin string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/edge/*path", New(store, origin, "v2").Serve)
	return r
}

func get(r *gin.Engine, target, accept string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestClassify(t *testing.T) {
	tests := []struct {
		path   string
		accept string
		want   resourceClass
	}{
		{"/images/x.jpg", "", classImage},
		{"/covers/x.webp", "", classImage},
		{"/app.css", "", classStatic},
		{"/fonts/serif.woff2", "", classStatic},
		{"/works/harbor", "text/html,application/xhtml+xml", classNavigation},
		{"/api/artworks", "application/json", classOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, classify(tt.path, tt.accept), "path %s", tt.path)
	}
}

func TestCacheFirst_HitShortCircuitsNetwork(t *testing.T) {
	var hits atomic.Int64
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write([]byte("jpegbytes"))
	}))
	defer origin.Close()

	store := NewMemoryStore()
	r := newEdgeRouter(store, origin.URL)

	// First request populates the images partition.
	w := get(r, "/edge/images/x.jpg", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jpegbytes", w.Body.String())
	assert.Equal(t, int64(1), hits.Load())

	// Second request is a cache hit; the origin is never consulted.
	w = get(r, "/edge/images/x.jpg", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jpegbytes", w.Body.String())
	assert.Equal(t, int64(1), hits.Load())
}

func TestCacheFirst_TotalFailureYieldsPlaceholderImage(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	origin.Close() // unreachable

	r := newEdgeRouter(NewMemoryStore(), origin.URL)

	w := get(r, "/edge/images/missing.jpg", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "<svg")
}

func TestCacheFirst_NonImageFailurePropagates(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	origin.Close()

	r := newEdgeRouter(NewMemoryStore(), origin.URL)

	w := get(r, "/edge/app.css", "")
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestNetworkFirst_SuccessIsStoredThenServedOnFailure(t *testing.T) {
	var down atomic.Bool
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if down.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<h1>Harbor</h1>"))
	}))
	defer origin.Close()

	store := NewMemoryStore()
	r := newEdgeRouter(store, origin.URL)

	w := get(r, "/edge/works/harbor", "text/html")
	require.Equal(t, http.StatusOK, w.Code)

	down.Store(true)

	// Network fails; the stored copy backs the navigation.
	w = get(r, "/edge/works/harbor", "text/html")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<h1>Harbor</h1>", w.Body.String())
}

func TestNetworkFirst_DoubleMissServesOfflinePage(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	origin.Close()

	r := newEdgeRouter(NewMemoryStore(), origin.URL)

	w := get(r, "/edge/works/never-visited", "text/html")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "You are offline")
}

func TestNetworkFirst_DoubleMissForNonNavigation(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	origin.Close()

	r := newEdgeRouter(NewMemoryStore(), origin.URL)

	w := get(r, "/edge/api/artworks", "application/json")
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestActivate_DropsPartitionsFromOtherVersions(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	store.Put(ctx, "images-v1", "/x.jpg", &CachedResponse{Status: 200})
	store.Put(ctx, "pages-v1", "/works", &CachedResponse{Status: 200})
	store.Put(ctx, "images-v2", "/y.jpg", &CachedResponse{Status: 200})

	New(store, "http://origin", "v2").Activate(ctx)

	_, ok := store.Get(ctx, "images-v1", "/x.jpg")
	assert.False(t, ok)
	_, ok = store.Get(ctx, "pages-v1", "/works")
	assert.False(t, ok)
	_, ok = store.Get(ctx, "images-v2", "/y.jpg")
	assert.True(t, ok)
}
