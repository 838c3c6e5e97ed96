package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contract_pdf_app/config"
	"contract_pdf_app/handlers"
	"contract_pdf_app/middleware"
	"contract_pdf_app/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Exports are held in storage only until the browser downloads them
	services.InitializeStorage(cfg)
	services.InitExportPipeline(cfg)
	defer services.Downloads.Close()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	e.GET("/", handlers.IndexHandler)
	e.POST("/preview", handlers.PreviewHandler)
	e.GET("/preview/expanded", handlers.ExpandedPreviewHandler)
	e.POST("/export", handlers.ExportHandler, middleware.NewExportRateLimiter(cfg.ExportRateLimit).Middleware())
	e.GET("/downloads/:token", handlers.DownloadHandler)
	e.GET("/healthz", handlers.HealthHandler)

	// Development routes
	if cfg.Environment == "development" {
		e.GET("/dev/capture", handlers.CapturePageHandler)
	}

	// Sweep exports orphaned by a crash or restart (runs every hour)
	if local, ok := services.Storage.(*services.LocalStorage); ok {
		staleAfter := services.Downloads.StaleAfter()
		go func() {
			ticker := time.NewTicker(1 * time.Hour)
			defer ticker.Stop()

			for range ticker.C {
				removed, err := local.PurgeOlderThan(time.Now().Add(-staleAfter))
				if err != nil {
					log.Printf("[WARNING] Error cleaning up stale exports: %v", err)
					continue
				}
				if removed > 0 {
					log.Printf("Removed %d stale export(s)", removed)
				}
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start server
	go func() {
		log.Printf("Server starting on port %s (%s)", cfg.ServerPort, cfg.AppURL)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("[ERROR] Server shutdown failed: %v", err)
	}
}
