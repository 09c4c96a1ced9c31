package routes

import (
	catalogapi "portfolio-backend/internal/api/catalog"
	revalidateapi "portfolio-backend/internal/api/revalidate"
	"portfolio-backend/internal/app/http/middleware"
	"portfolio-backend/internal/content"
	"portfolio-backend/internal/edge"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, svc *content.Service, edgeCache *edge.Cache, revalidateSecret string) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	catalog := catalogapi.NewHandler(svc)

	public := r.Group("/")
	public.GET("/artworks", catalog.ListArtworks)
	public.GET("/artworks/featured", catalog.ListFeatured)
	public.GET("/artworks/tag/:tag", catalog.ListByTag)
	public.GET("/artworks/:slug", catalog.GetBySlug)
	public.GET("/artist", catalog.GetArtist)

	// ✅ Sanitize pushed webhook bodies before they reach the handler
	webhook := r.Group("/")
	webhook.Use(middleware.SanitizeAndCleanInputMiddleware())
	webhook.POST("/revalidate", revalidateapi.NewHandler(svc, revalidateSecret).Revalidate)

	if edgeCache != nil {
		r.GET("/edge/*path", edgeCache.Serve)
	}
}
