package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/lowcountrylister/listing-service/app/config"
	"github.com/lowcountrylister/listing-service/app/controllers"
	"github.com/lowcountrylister/listing-service/app/services"
	"github.com/lowcountrylister/listing-service/internal/authenticity"
	"github.com/lowcountrylister/listing-service/internal/directory"
	"github.com/lowcountrylister/listing-service/internal/gazetteer"
	"github.com/lowcountrylister/listing-service/internal/resolver"
	"github.com/lowcountrylister/listing-service/internal/suggest"
	"github.com/lowcountrylister/listing-service/routes"
	"go.uber.org/zap"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("cannot load configuration:", err)
	}

	// 2. Logger
	logger := initLogger(cfg.Env)
	defer logger.Sync()

	logger.Info("starting Lowcountry Lister address engine")

	// 3. Engine data
	gaz, err := gazetteer.Load()
	if err != nil {
		logger.Fatal("failed to load gazetteer", zap.Error(err))
	}
	dir, err := directory.Load()
	if err != nil {
		logger.Fatal("failed to load neighborhood directory", zap.Error(err))
	}
	logger.Info("engine data loaded",
		zap.Int("gazetteer_entries", gaz.Len()),
		zap.Int("neighborhoods", dir.Len()))

	// Surface data-quality findings at startup; warnings are tolerated,
	// errors mean the shipped data breaks a resolver invariant.
	issues := directory.Validate(dir)
	for _, issue := range issues {
		logger.Warn("directory data issue",
			zap.String("severity", string(issue.Severity)),
			zap.String("record", issue.Record),
			zap.String("message", issue.Message))
	}
	if directory.HasErrors(issues) {
		logger.Fatal("neighborhood directory failed validation")
	}

	// 4. Engine components
	matcher := suggest.NewMatcher(gaz, logger)
	res := resolver.NewResolver(dir, logger)
	scorer := authenticity.NewScorer(dir, logger)

	// 5. Resolution cache: LRU L1, optional Redis L2
	lruCache, err := services.NewLRUCacheService(cfg.ResolutionCacheSize, logger)
	if err != nil {
		logger.Fatal("failed to initialize LRU cache", zap.Error(err))
	}

	var resolutionCache services.IResolutionCache = lruCache
	if cfg.RedisEnabled {
		redisCache, err := services.NewRedisCacheService(cfg.RedisURL, cfg.RedisTTL, logger)
		if err != nil {
			logger.Fatal("failed to initialize Redis cache", zap.Error(err))
		}
		resolutionCache = services.NewHybridCacheService(lruCache, redisCache, logger)
		logger.Info("hybrid resolution cache enabled", zap.String("redis", cfg.RedisURL))
	}
	defer resolutionCache.Close()

	// 6. Services
	listingService, err := services.NewListingService(dir, matcher, res, scorer, resolutionCache,
		services.ListingServiceConfig{
			SuggestionCacheSize: cfg.SuggestionCacheSize,
			MinResolveLength:    cfg.MinResolveLength,
			ProjectorSeed:       cfg.ProjectorSeed,
		}, logger)
	if err != nil {
		logger.Fatal("failed to initialize listing service", zap.Error(err))
	}

	// 7. Controllers and router
	listingController := controllers.NewListingController(listingService, logger)
	directoryController := controllers.NewDirectoryController(listingService, logger)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	routes.SetupAllRoutes(router, listingController, directoryController)

	// 8. Serve
	logger.Info("listening", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func initLogger(env string) *zap.Logger {
	var zapCfg zap.Config
	if env == "production" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	logger, err := zapCfg.Build()
	if err != nil {
		log.Fatal("cannot initialize logger:", err)
	}
	return logger
}
