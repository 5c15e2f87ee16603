package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ahmednasr/trending-hub/server/internal/config"
	"github.com/ahmednasr/trending-hub/server/internal/github"
	"github.com/ahmednasr/trending-hub/server/internal/handler"
	"github.com/ahmednasr/trending-hub/server/internal/logger"
	"github.com/ahmednasr/trending-hub/server/internal/middleware"
	"github.com/ahmednasr/trending-hub/server/internal/repository"
	"github.com/ahmednasr/trending-hub/server/internal/service"
	"github.com/ahmednasr/trending-hub/server/internal/trending"
)

// main wires the scraper, cache, scheduler and GitHub proxy behind one Fiber app.
func main() {
	// Load configuration
	cfg := config.Load()
	log := logger.New(os.Stderr, cfg.LogLevel)
	log.Info("configuration loaded",
		"port", cfg.Port,
		"trending_url", cfg.TrendingURL,
		"github_api_url", cfg.GitHubAPIURL,
		"refresh_schedule", cfg.RefreshSchedule,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Scrape pipeline and its in-memory cache
	cache := repository.NewTrendingMemory()
	fetcher := trending.NewHTTPFetcher(cfg.TrendingURL, cfg.FetchTimeout)
	trendingSvc := service.NewTrendingService(fetcher, cache, log)

	// Upstream proxy
	gh, err := github.NewClient(cfg.GitHubAPIURL, cfg.UpstreamTimeout)
	if err != nil {
		log.Fatal("failed to create GitHub client", "err", err)
	}
	githubSvc := service.NewGitHubService(gh, log)

	// Initial scrape plus the daily refresh
	scheduler := service.NewRefreshScheduler(trendingSvc, cfg.RefreshSchedule, time.Local, cfg.RefreshTimeout, log)
	if err := scheduler.Start(ctx); err != nil {
		log.Fatal("failed to schedule refresh", "err", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		ErrorHandler:          handler.ErrorHandler,
		DisableStartupMessage: true,
	})

	// Add middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))
	app.Use(middleware.Logging(log))

	// Register routes
	handler.RegisterRoutes(app, trendingSvc, githubSvc)

	// Start server
	go func() {
		log.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal("server failed to start", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error("server shutdown", "err", err)
	}
	<-scheduler.Stop().Done()
}
