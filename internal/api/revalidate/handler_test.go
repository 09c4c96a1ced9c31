package revalidate

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio-backend/internal/cache"
	"portfolio-backend/internal/content"
	"portfolio-backend/internal/infra/airtable"
	"portfolio-backend/internal/infra/retry"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*gin.Engine, *cache.Memory) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := cache.NewMemory()
	provider := airtable.NewProvisioner(func() airtable.Config { return airtable.Config{} })
	svc := content.NewService(store, provider, retry.New(retry.DefaultConfig()), content.NewValidator(nil), nil)

	r := gin.New()
	r.POST("/revalidate", NewHandler(svc, "topsecret").Revalidate)
	return r, store
}

func post(r *gin.Engine, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/revalidate", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRevalidate_SecretMismatchHasNoSideEffect(t *testing.T) {
	r, store := setup(t)
	ctx := context.Background()

	store.Set(ctx, cache.KeyArtworks, []byte("[]"), time.Hour)

	w := post(r, gin.H{"tag": "artworks", "secret": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	_, lookup := store.Get(ctx, cache.KeyArtworks)
	assert.Equal(t, cache.Hit, lookup)
}

func TestRevalidate_MissingTag(t *testing.T) {
	r, _ := setup(t)

	w := post(r, gin.H{"secret": "topsecret"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRevalidate_UnknownTag(t *testing.T) {
	r, _ := setup(t)

	w := post(r, gin.H{"tag": "plans", "secret": "topsecret"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRevalidate_ClearsTagPartition(t *testing.T) {
	r, store := setup(t)
	ctx := context.Background()

	store.Set(ctx, cache.KeyArtworks, []byte("[]"), time.Hour)
	store.Set(ctx, cache.KeyFeatured, []byte("[]"), time.Hour)
	store.Set(ctx, cache.KeyArtist, []byte("{}"), time.Hour)

	w := post(r, gin.H{"tag": "artworks", "secret": "topsecret"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["revalidated"])
	assert.Equal(t, "artworks", resp["tag"])

	_, lookup := store.Get(ctx, cache.KeyArtworks)
	assert.Equal(t, cache.Miss, lookup)
	_, lookup = store.Get(ctx, cache.KeyFeatured)
	assert.Equal(t, cache.Miss, lookup)

	// Other partitions untouched.
	_, lookup = store.Get(ctx, cache.KeyArtist)
	assert.Equal(t, cache.Hit, lookup)
}
