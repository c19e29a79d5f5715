package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"cityguide/internal/app"
	"cityguide/internal/client/events"
	"cityguide/internal/client/osrm"
	"cityguide/internal/client/overpass"
	"cityguide/internal/client/photon"
	"cityguide/internal/config"
	"cityguide/internal/fare"
	"cityguide/internal/handler"
	internalRedis "cityguide/internal/redis"
	"cityguide/internal/service"
	"cityguide/internal/tariff"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic first so Redis can be instrumented.
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s", cfg.NewRelic.AppName)
		}
	}

	// Redis is optional: without it the service still works, it just
	// hits every upstream directly.
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = app.NewRedisClient(ctx, cfg.Redis, nrApp)
		if err != nil {
			log.Printf("redis unavailable, continuing without caching: %v", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
			log.Println("Connected to Redis")
		}
	}

	// Build the tariff table and validate it before serving traffic.
	table, err := loadTariffTable(cfg.Tariff)
	if err != nil {
		log.Fatalf("invalid tariff configuration: %v", err)
	}
	schedule := tariff.DefaultSchedule()
	if err := schedule.Validate(table); err != nil {
		log.Fatalf("invalid tariff schedule: %v", err)
	}

	// Wire dependencies.
	server := wireServer(redisClient, nrApp, cfg, table, schedule)

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// loadTariffTable loads the configured tariff table, falling back to the
// built-in Konstanz tariffs.
func loadTariffTable(cfg config.TariffConfig) (*tariff.Table, error) {
	if cfg.Path != "" {
		log.Printf("Loading tariff table from %s", cfg.Path)
		return tariff.LoadTable(cfg.Path)
	}
	return tariff.DefaultTable(), nil
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config, table *tariff.Table, schedule tariff.Schedule) *http.Server {
	// Initialize Redis stores. They stay nil without Redis; the
	// services treat nil stores as cache misses.
	var cacheStore internalRedis.CacheStoreInterface
	var geoStore internalRedis.GeoStoreInterface
	var lockStore internalRedis.LockStoreInterface
	if redisClient != nil {
		cacheStore = internalRedis.NewCacheStore(redisClient)
		geoStore = internalRedis.NewGeoStore(redisClient)
		lockStore = internalRedis.NewLockStore(redisClient)
	}

	// Initialize upstream clients.
	timeout := cfg.Upstream.Timeout
	osrmClient := osrm.NewClient(cfg.Upstream.OSRMBaseURL, timeout)
	photonClient := photon.NewClient(cfg.Upstream.PhotonBaseURL, photon.RegionBias{
		Lat:          cfg.Region.BiasLat,
		Lng:          cfg.Region.BiasLng,
		BBox:         cfg.Region.PhotonBBox,
		CountryCode:  cfg.Region.CountryCode,
		State:        cfg.Region.State,
		City:         cfg.Region.City,
		NearbyCities: cfg.Region.NearbyCities,
		FallbackCity: cfg.Region.City,
	}, timeout)
	overpassClient := overpass.NewClient(cfg.Upstream.OverpassEndpoints, cfg.Region.OverpassBBox, timeout)
	eventsClient := events.NewClient(cfg.Upstream.EventsBaseURL, timeout)

	// Initialize services.
	calculator := fare.NewCalculator(table, schedule)
	fareService := service.NewFareService(osrmClient, calculator, cacheStore)
	venueService := service.NewVenueService(overpassClient, cacheStore, geoStore, lockStore)
	addressService := service.NewAddressService(photonClient)
	eventService := service.NewEventService(eventsClient, photonClient, cacheStore)
	directoryService := service.NewDirectoryService()

	// Initialize handlers.
	fareHandler := handler.NewFareHandler(fareService)
	tariffHandler := handler.NewTariffHandler(table, schedule)
	venueHandler := handler.NewVenueHandler(venueService)
	addressHandler := handler.NewAddressHandler(addressService)
	eventHandler := handler.NewEventHandler(eventService)
	directoryHandler := handler.NewDirectoryHandler(directoryService)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		FareHandler:      fareHandler,
		TariffHandler:    tariffHandler,
		VenueHandler:     venueHandler,
		AddressHandler:   addressHandler,
		EventHandler:     eventHandler,
		DirectoryHandler: directoryHandler,
		RedisClient:      redisClient,
		NewRelicApp:      nrApp,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
