package revalidate

import (
	"crypto/subtle"
	"net/http"

	"portfolio-backend/internal/content"

	"github.com/gin-gonic/gin"
)

type RevalidateRequest struct {
	Tag    string `json:"tag" binding:"required"`
	Secret string `json:"secret"`
}

// Handler is the push-based invalidation endpoint: the remote datastore's
// change automation POSTs here so edits show up before the TTL elapses.
type Handler struct {
	svc    *content.Service
	secret string
}

func NewHandler(svc *content.Service, secret string) *Handler {
	return &Handler{svc: svc, secret: secret}
}

// ------------------------------
// POST /revalidate
// ------------------------------
func (h *Handler) Revalidate(c *gin.Context) {
	var req RevalidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid tag"})
		return
	}

	// Secret mismatch rejects with no side effect.
	if h.secret == "" || subtle.ConstantTimeCompare([]byte(req.Secret), []byte(h.secret)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid secret"})
		return
	}

	if err := h.svc.Invalidate(c.Request.Context(), req.Tag); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"revalidated": true, "tag": req.Tag})
}
