package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/tablewise/backend/internal/api/handlers"
	cache "github.com/tablewise/backend/internal/cache/redis"
	"github.com/tablewise/backend/internal/enrich"
	"github.com/tablewise/backend/internal/geocode"
	"github.com/tablewise/backend/internal/metrics"
	"github.com/tablewise/backend/internal/middleware/ratelimit"
	"github.com/tablewise/backend/internal/middleware/security"
	"github.com/tablewise/backend/internal/provider"
	"github.com/tablewise/backend/internal/search"
	"github.com/tablewise/backend/internal/tools"
	"github.com/tablewise/backend/pkg/config"
	appLogger "github.com/tablewise/backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	err = appLogger.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.OutputPath)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Sync()

	appLogger.Info("Starting TableWise API Server")

	metrics.Init()

	var cacheClient *cache.Client
	if cfg.Cache.Enabled {
		cacheClient, err = cache.NewClient(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			appLogger.Warn("Redis unavailable, running without cache", zap.Error(err))
			cacheClient = nil
		} else {
			defer cacheClient.Close()
		}
	}

	providerTimeout := time.Duration(cfg.Provider.TimeoutSec) * time.Second

	chatClient := provider.NewClient(cfg.Provider.ChatAPIKey, cfg.Provider.ChatURL, providerTimeout)
	detailClient := provider.NewDetailClient(cfg.Provider.FusionAPIKey, cfg.Provider.FusionURL, providerTimeout)
	geocodeClient := geocode.NewClient(cfg.Geocode.URL, cfg.Geocode.UserAgent, time.Duration(cfg.Geocode.TimeoutSec)*time.Second)

	coordinator := enrich.NewCoordinator(chatClient)
	engine := search.NewEngine(
		chatClient,
		coordinator,
		cacheClient,
		time.Duration(cfg.Cache.SearchTTLMin)*time.Minute,
		cfg.Provider.MaxResults,
	)
	toolService := tools.NewService(engine)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:    cfg.Server.BodyLimit,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Session-ID",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))
	app.Use(security.HeadersMiddleware(security.HeadersConfig{}))

	limiter := ratelimit.New(ratelimit.Config{MaxRequestsPerMinute: cfg.Server.RateLimit})
	defer limiter.Stop()
	app.Use(limiter.Middleware())

	searchHandler := handlers.NewSearchHandler(engine)
	hoursHandler := handlers.NewHoursHandler(detailClient)
	quoteHandler := handlers.NewQuoteHandler(engine)
	geocodeHandler := handlers.NewGeocodeHandler(geocodeClient)
	toolsHandler := handlers.NewToolsHandler(toolService)

	api := app.Group("/api/v1")

	api.Post("/search", searchHandler.HandleSearch)
	api.Post("/business-hours", hoursHandler.HandleBusinessHours)
	api.Post("/quote", quoteHandler.HandleQuote)
	api.Get("/geocode", geocodeHandler.HandleGeocode)

	toolsGroup := api.Group("/tools")
	toolsGroup.Post("/quickfind", toolsHandler.HandleQuickFind)
	toolsGroup.Post("/safeeats", toolsHandler.HandleSafeEats)
	toolsGroup.Post("/solosafe", toolsHandler.HandleSoloSafe)
	toolsGroup.Post("/waitwise", toolsHandler.HandleWaitWise)
	toolsGroup.Post("/trueprice", toolsHandler.HandleTruePrice)
	toolsGroup.Post("/dateplan", toolsHandler.HandlePlanDate)

	if cacheClient != nil {
		kvHandler := handlers.NewKVHandler(cacheClient, time.Duration(cfg.Cache.SessionTTLHr)*time.Hour)
		api.Get("/kv/:session/:key", kvHandler.HandleGet)
		api.Put("/kv/:session/:key", kvHandler.HandlePut)
	}

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Unix(),
		})
	})

	app.Get("/metrics", metrics.MetricsHandler())

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	appLogger.Info("Server starting", zap.String("address", addr))

	go func() {
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Server shutting down gracefully...")
	app.Shutdown()
	appLogger.Info("Server stopped")
}
