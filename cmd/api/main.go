package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glowkart/internal/auth"
	"glowkart/internal/config"
	"glowkart/internal/database"
	"glowkart/internal/handler"
	"glowkart/internal/media"
	"glowkart/internal/repository"
	"glowkart/internal/router"
	"glowkart/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting glowkart API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize repositories
	productRepo := repository.NewProductRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)
	userRepo := repository.NewUserRepository(pool, logger)
	faqRepo := repository.NewFAQRepository(pool, logger)
	couponRepo := repository.NewCouponRepository(pool, logger)
	videoRepo := repository.NewVideoRepository(pool, logger)
	analyticsRepo := repository.NewAnalyticsRepository(pool, logger)

	// Initialize media store with S3 and local fallback
	var mediaStore media.Store
	if cfg.Media.S3Enabled {
		mediaStore, err = media.NewS3Store(ctx, cfg.Media.Bucket, cfg.Media.Region, cfg.Media.Prefix, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 media store, falling back to local file system")
			mediaStore, err = media.NewFileStore(cfg.Media.LocalDir, cfg.Media.BaseURL, logger)
			if err != nil {
				return fmt.Errorf("failed to initialize media store: %w", err)
			}
		}
	} else {
		mediaStore, err = media.NewFileStore(cfg.Media.LocalDir, cfg.Media.BaseURL, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize media store: %w", err)
		}
		logger.Info().Msg("using local file system for product images (S3 disabled)")
	}

	// Initialize token manager
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.ExpiryHours)*time.Hour)

	// Initialize services
	productService := service.NewProductService(productRepo, mediaStore, logger)
	couponService := service.NewCouponService(couponRepo, logger)
	orderService := service.NewOrderService(orderRepo, productRepo, couponRepo, couponService, logger)
	userService := service.NewUserService(userRepo, tokens, logger)
	faqService := service.NewFAQService(faqRepo, logger)
	videoService := service.NewVideoService(videoRepo, logger)
	analyticsService := service.NewAnalyticsService(analyticsRepo, logger)
	invoiceService := service.NewInvoiceService(logger)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Auth:      handler.NewAuthHandler(userService, logger),
		Product:   handler.NewProductHandler(productService, logger),
		Order:     handler.NewOrderHandler(orderService, invoiceService, logger),
		User:      handler.NewUserHandler(userService, logger),
		FAQ:       handler.NewFAQHandler(faqService, logger),
		Coupon:    handler.NewCouponHandler(couponService, logger),
		Video:     handler.NewVideoHandler(videoService, logger),
		Analytics: handler.NewAnalyticsHandler(analyticsService, logger),
	}

	// Initialize router
	mux := router.New(handlers, tokens, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
