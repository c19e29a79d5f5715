package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"cityguide/internal/handler"
	"cityguide/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	FareHandler      *handler.FareHandler
	TariffHandler    *handler.TariffHandler
	VenueHandler     *handler.VenueHandler
	AddressHandler   *handler.AddressHandler
	EventHandler     *handler.EventHandler
	DirectoryHandler *handler.DirectoryHandler
	RedisClient      *redis.Client
	NewRelicApp      *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		v1.GET("/tariffs", deps.TariffHandler.ListTariffs)

		fare := v1.Group("/fare")
		{
			fare.POST("/estimates", deps.FareHandler.EstimateFare)
		}

		addresses := v1.Group("/addresses")
		{
			addresses.GET("/search", deps.AddressHandler.Search)
		}

		venues := v1.Group("/venues")
		{
			venues.GET("/nightlife", deps.VenueHandler.ListNightlife)
			venues.GET("/nightlife/geojson", deps.VenueHandler.NightlifeGeoJSON)
		}

		v1.GET("/events", deps.EventHandler.ListEvents)
		v1.GET("/wifi", deps.DirectoryHandler.ListWifiSpots)

		taxi := v1.Group("/taxi")
		{
			taxi.GET("/companies", deps.DirectoryHandler.ListTaxiCompanies)
		}
	}

	return router
}
