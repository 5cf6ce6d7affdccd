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

	"github.com/rafaelandrade/intelligent-resume-matcher/internal/acquirer"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/api/routes"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/cache"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/config"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/llm"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/logging"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/pdfreader"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/ratelimit"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/similarity"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/store"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.CloseLogging()

	logger := logging.GetGlobalLogger()
	logger.Info("Starting Intelligent Resume Matcher")

	// Shared store, created once and injected everywhere
	kv := store.NewRedisStore(cfg)
	defer kv.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), cfg.Redis.Timeout)
	if err := kv.Ping(pingCtx); err != nil {
		logger.Warn("Store unreachable at startup, caching and rate limiting degrade", map[string]interface{}{
			"error": err.Error(),
		})
	}
	cancel()

	// LLM manager
	llmManager := llm.NewManager(cfg)
	if err := llmManager.Start(); err != nil {
		logger.Fatal("Failed to start LLM manager", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Job description acquirer
	textAcquirer, err := acquirer.New(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize job description acquirer", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer textAcquirer.Cleanup()

	resultCache := cache.NewResultCache(kv, cfg.Cache.SimilarityTTL)
	engine := similarity.NewEngine(llmManager, resultCache, cfg)
	limiter := ratelimit.NewLimiter(kv, cfg)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	routes.SetupRoutes(e, cfg, routes.Dependencies{
		Acquirer:   textAcquirer,
		PDF:        pdfreader.New(),
		Checker:    validator.New(),
		Engine:     engine,
		Store:      kv,
		LLMManager: llmManager,
		Limiter:    limiter,
	})

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := llmManager.Stop(); err != nil {
			logger.Error("Error stopping LLM manager", map[string]interface{}{
				"error": err.Error(),
			})
		}

		textAcquirer.Cleanup()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{
				"error": err.Error(),
			})
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{
		"address": address,
	})

	if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Server failed to start", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
