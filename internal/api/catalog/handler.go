package catalog

import (
	"net/http"

	"portfolio-backend/internal/content"

	"github.com/gin-gonic/gin"
)

// Handler serves the catalog read API. Every collection endpoint answers 200
// with data: the orchestrator behind it never fails, it degrades.
type Handler struct {
	svc *content.Service
}

func NewHandler(svc *content.Service) *Handler {
	return &Handler{svc: svc}
}

// ------------------------------
// GET /artworks
// ------------------------------
func (h *Handler) ListArtworks(c *gin.Context) {
	artworks := h.svc.FetchArtworks(c.Request.Context())
	c.JSON(http.StatusOK, ArtworksResponse{Artworks: artworks, Count: len(artworks)})
}

// ------------------------------
// GET /artworks/featured
// ------------------------------
func (h *Handler) ListFeatured(c *gin.Context) {
	artworks := h.svc.FetchFeatured(c.Request.Context())
	c.JSON(http.StatusOK, ArtworksResponse{Artworks: artworks, Count: len(artworks)})
}

// ------------------------------
// GET /artworks/tag/:tag
// ------------------------------
func (h *Handler) ListByTag(c *gin.Context) {
	tag := c.Param("tag")
	if tag == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing tag"})
		return
	}

	artworks := h.svc.FetchByTag(c.Request.Context(), tag)
	c.JSON(http.StatusOK, ArtworksResponse{Artworks: artworks, Count: len(artworks), Tag: tag})
}

// ------------------------------
// GET /artworks/:slug
// ------------------------------
func (h *Handler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	artwork, ok := h.svc.FetchBySlug(c.Request.Context(), slug)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}

	c.JSON(http.StatusOK, artwork)
}

// ------------------------------
// GET /artist
// ------------------------------
func (h *Handler) GetArtist(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.FetchArtist(c.Request.Context()))
}
