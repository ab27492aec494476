package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cineMatch/app/echo-server/router"
	"cineMatch/business/catalog"
	"cineMatch/business/preference"
	"cineMatch/business/recommender"
	"cineMatch/internal/middleware"
	psqlRepo "cineMatch/internal/repository/postgres"
	"cineMatch/internal/rest"
	"cineMatch/pkg/config"
	"cineMatch/pkg/database"
	"cineMatch/pkg/logger"
	"cineMatch/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting CineMatch", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	// Init metrics
	metrics.Init()

	// Init repo
	movieRepo := psqlRepo.NewMovieRepository(db)
	prefRepo := psqlRepo.NewPreferenceRepository(db)

	// Init service
	recoService := recommender.NewRecommenderService(movieRepo, cfg.Recommender)
	catalogService := catalog.NewCatalogService(movieRepo, recoService, cfg.Recommender.SeedRating)
	preferenceService := preference.NewPreferenceService(prefRepo)

	// Warm the snapshot; an empty catalog is fine at boot, recommendations
	// just answer 503 until movies are added.
	if err := recoService.Rebuild(context.Background()); err != nil {
		if errors.Is(err, recommender.ErrInvalidCatalog) {
			logger.Warn("Catalog is empty, recommendations unavailable until movies are added")
		} else {
			logger.Fatal("Failed to build catalog snapshot", "error", err)
		}
	}

	// Init handler
	movieHandler := rest.NewMovieHandler(catalogService)
	preferenceHandler := rest.NewPreferenceHandler(preferenceService)
	recommendationHandler := rest.NewRecommendationHandler(recoService, preferenceService, cfg.Recommender.DefaultN)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(middleware.TraceMiddleware())

	e.GET("/health", func(c echo.Context) error {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request().Context())
		}
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
				"status": "not_ready",
				"db":     err.Error(),
			})
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status": "ok",
		})
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupUserRoutes(api, preferenceHandler)
	router.SetupMovieRoutes(api, movieHandler)
	router.SetRecommendationRoutes(api, recommendationHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
