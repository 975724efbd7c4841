package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dafibh/wealthflow/wealthflow-backend/internal/advisor"
	"github.com/dafibh/wealthflow/wealthflow-backend/internal/config"
	"github.com/dafibh/wealthflow/wealthflow-backend/internal/handler"
	"github.com/dafibh/wealthflow/wealthflow-backend/internal/middleware"
	"github.com/dafibh/wealthflow/wealthflow-backend/internal/repository"
	"github.com/dafibh/wealthflow/wealthflow-backend/internal/service"
	"github.com/dafibh/wealthflow/wealthflow-backend/internal/websocket"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load timezone")
	}

	ctx := context.Background()

	// Open snapshot store
	repo, closeRepo, err := repository.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StorageDriver).Msg("Failed to open snapshot store")
	}
	defer closeRepo()

	// Load the snapshot once; all services share it
	snapshotService := service.NewSnapshotService(repo, cfg.SnapshotKey)
	if err := snapshotService.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to load snapshot")
	}

	// Initialize WebSocket hub
	hub := websocket.NewHub()
	snapshotService.SetEventPublisher(hub)
	hub.SetSyncSource(snapshotService.SyncEvent)

	// Initialize services
	transactionService := service.NewTransactionService(snapshotService)
	transactionService.SetEventPublisher(hub)
	portfolioService := service.NewPortfolioService(snapshotService)
	portfolioService.SetEventPublisher(hub)
	goalService := service.NewGoalService(snapshotService, loc)
	goalService.SetEventPublisher(hub)
	dashboardService := service.NewDashboardService(snapshotService, loc)

	generator, err := advisor.New(ctx, cfg.Advice)
	if err != nil {
		log.Fatal().Err(err).Str("provider", cfg.Advice.Provider).Msg("Failed to create advice provider")
	}
	adviceService := service.NewAdviceService(snapshotService, generator, cfg.Advice.Timeout)

	// Advice calls a paid provider, so it gets its own limiter
	adviceLimiter := middleware.NewRateLimiterWithConfig(cfg.Advice.RatePerMinute, cfg.Advice.Burst)
	defer adviceLimiter.Stop()

	// Initialize handlers
	handlers := handler.Handlers{
		Transaction: handler.NewTransactionHandler(transactionService),
		Portfolio:   handler.NewPortfolioHandler(portfolioService),
		Goal:        handler.NewGoalHandler(goalService),
		Dashboard:   handler.NewDashboardHandler(dashboardService),
		Snapshot:    handler.NewSnapshotHandler(snapshotService),
		Advice:      handler.NewAdviceHandler(adviceService),
		WebSocket:   handler.NewWebSocketHandler(hub, cfg.CORSOrigins),
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		MaxAge:       86400,
	}))

	// Security headers middleware
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}))

	// Request logging middleware with zerolog
	e.Use(zerologMiddleware())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "ok",
			"storage": cfg.StorageDriver,
			"advice":  cfg.Advice.Provider,
			"clients": hub.ClientCount(),
		})
	})

	// Register API routes
	handler.RegisterRoutes(e, handlers, middleware.RateLimitMiddleware(adviceLimiter))

	// Start server in goroutine
	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("storage", cfg.StorageDriver).
			Str("advice", cfg.Advice.Provider).
			Str("timezone", loc.String()).
			Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// zerologMiddleware returns a middleware that logs requests using zerolog
func zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			log.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Msg("request")

			return nil
		}
	}
}
