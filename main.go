package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ReikiC/homepage/content"
)

const (
	serverIdleTimeout     = 1 * time.Minute
	serverReadTimeout     = 10 * time.Second
	serverWriteTimeout    = 30 * time.Second
	serverShutdownTimeout = 10 * time.Second
	cleanupInterval       = 24 * time.Hour
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	gin.SetMode(cfg.GinMode)

	site, err := content.Load(cfg.Content.File)
	if err != nil {
		logger.Fatal("Failed to load site content", zap.Error(err))
	}
	applyOverrides(site, cfg.Content)

	metrics := NewMetrics()

	var visitors *VisitorStore
	if cfg.Visitors.Enabled {
		visitors, err = OpenVisitorStore(cfg.Visitors.DBPath, cfg.Visitors.Retention, logger, metrics)
		if err != nil {
			logger.Fatal("Failed to open visitor store", zap.Error(err))
		}
		defer visitors.Close()
	}

	if cfg.Admin.Generated {
		logger.Info("No ADMIN_TOKEN configured, generated one for this process")
		if cfg.GinMode == gin.DebugMode {
			logger.Debug("Admin token (dev only)", zap.String("token", cfg.Admin.Token))
		}
	}

	handler, err := NewServer(site, visitors, metrics, cfg.Admin.Token, logger)
	if err != nil {
		logger.Fatal("Failed to init server", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		IdleTimeout:  serverIdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if visitors != nil {
		go runCleanup(ctx, visitors, logger)
	}

	go func() {
		logger.Info("Homepage listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Cannot start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	} else {
		logger.Info("Server shutdown cleanly")
	}
}

// applyOverrides lets deployments point the navigation at wherever the docs and
// blog are hosted without editing the content file.
func applyOverrides(site *content.Site, cfg ContentConfig) {
	if cfg.SiteTitle != "" {
		site.Title = cfg.SiteTitle
	}
	if cfg.DocsURL != "" {
		site.DocsURL = cfg.DocsURL
	}
	if cfg.BlogURL != "" {
		site.BlogURL = cfg.BlogURL
	}
}

// runCleanup prunes visitor data once at startup and then daily.
func runCleanup(ctx context.Context, visitors *VisitorStore, logger *zap.Logger) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		if _, err := visitors.Cleanup(ctx); err != nil && ctx.Err() == nil {
			logger.Warn("Visitor cleanup failed", zap.Error(err))
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
