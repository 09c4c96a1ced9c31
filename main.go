package main

import (
	"context"
	"time"

	"portfolio-backend/config"
	"portfolio-backend/database"
	routes "portfolio-backend/internal/app/http"
	"portfolio-backend/internal/cache"
	"portfolio-backend/internal/content"
	"portfolio-backend/internal/edge"
	"portfolio-backend/internal/infra/airtable"
	"portfolio-backend/internal/infra/retry"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()

	ctx := context.Background()

	memory := cache.NewMemory()
	tiers := []cache.Store{memory}

	var redisClient *redis.Client
	if config.REDIS_ADDR != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     config.REDIS_ADDR,
			Password: config.REDIS_PASSWORD,
		})
		tiers = append(tiers, cache.NewRedis(redisClient, "catalog:"))
	}

	store := cache.NewTiered(tiers...)
	cache.StartSweeper(ctx, store, cache.SweepInterval)

	provider := airtable.NewProvisioner(func() airtable.Config {
		return airtable.Config{
			APIKey: config.AIRTABLE_API_KEY,
			BaseID: config.AIRTABLE_BASE_ID,
		}
	})

	snapshots := database.InitSnapshots(config.DB_URL)

	svc := content.NewService(store, provider, retry.New(retry.DefaultConfig()), content.NewValidator(nil), snapshots)

	var edgeCache *edge.Cache
	if config.EDGE_ORIGIN != "" {
		var edgeStore edge.PartitionStore = edge.NewMemoryStore()
		if redisClient != nil {
			edgeStore = edge.NewRedisStore(redisClient)
		}
		edgeCache = edge.New(edgeStore, config.EDGE_ORIGIN, config.EDGE_CACHE_VERSION)
		edgeCache.Activate(ctx)
	}

	r := gin.Default()

	// ✅ Add CORS middleware BEFORE registering routes
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, svc, edgeCache, config.REVALIDATE_SECRET)

	r.Run(":" + config.PORT)
}
