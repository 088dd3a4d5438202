// ABOUTME: Main entry point for the Freelance Radar API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"freelance-radar-api/api"
	"freelance-radar-api/api/handlers"
	"freelance-radar-api/api/middleware"
	"freelance-radar-api/core/analysis"
	"freelance-radar-api/core/feed"
	"freelance-radar-api/core/interfaces"
	"freelance-radar-api/core/lexicon"
	"freelance-radar-api/core/ranking"
	"freelance-radar-api/core/sources"
	stdhttp "freelance-radar-api/infrastructure/http/standard"
	"freelance-radar-api/infrastructure/llm/gemini"
	logruslogger "freelance-radar-api/infrastructure/logger/logrus"
	"freelance-radar-api/pkg/config"
	"freelance-radar-api/pkg/featureflags"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}

	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger, err := logruslogger.New(logruslogger.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	lex, err := loadLexicon(cfg.Data.LexiconPath)
	if err != nil {
		log.Fatalf("Failed to load lexicon: %v", err)
	}

	registry, err := loadRegistry(cfg.Data.SourcesPath)
	if err != nil {
		log.Fatalf("Failed to load sources: %v", err)
	}

	flags := featureflags.NewEnvManager("FEATURE_")
	ctx := context.Background()

	logger.Info("Starting Freelance Radar API", map[string]interface{}{
		"port":     cfg.Server.Port,
		"sources":  registry.Len(),
		"lexicon":  lex.Version,
		"features": flags.GetAllFlags(),
	})

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(cfg.Fetch.Timeout,
		stdhttp.WithAttempts(cfg.Fetch.Attempts),
		stdhttp.WithUserAgent(cfg.Fetch.UserAgent),
		stdhttp.WithLogger(logger),
	)

	// Create dependencies container
	deps := interfaces.Dependencies{
		HTTPClient: httpClient,
		Logger:     logger,
	}

	fetchCfg := feed.FetcherConfig{MaxBodyBytes: cfg.Fetch.MaxBodyBytes}
	if flags.IsEnabled(ctx, featureflags.FeedRelayEnabled) {
		fetchCfg.RelayURL = cfg.Fetch.RelayURL
	}

	// Create services
	feedService := feed.NewFeedService(deps, feed.Config{Fetcher: fetchCfg, Lexicon: lex})
	rankingService := ranking.NewService(deps, registry, feedService, ranking.Config{
		MaxResults:     cfg.Ranking.MaxResults,
		MaxAge:         cfg.Ranking.MaxAge(),
		MaxConcurrency: cfg.Ranking.MaxConcurrency,
	})

	var analyzer interfaces.Analyzer
	if cfg.LLM.APIKey != "" {
		generator, err := gemini.NewGenerator(ctx, cfg.LLM.APIKey, cfg.LLM.Model, gemini.WithTimeout(cfg.LLM.Timeout))
		if err != nil {
			logger.Error("Failed to create Gemini client, analysis disabled", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			analyzer = analysis.NewService(deps, generator)
		}
	} else {
		logger.Warn("GEMINI_API_KEY not set, analysis disabled", nil)
	}

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:         logger,
		CORSOrigins:    cfg.Server.CORSOrigins,
		RequestTimeout: cfg.Server.RequestTimeout,
	}
	if flags.IsEnabled(ctx, featureflags.RateLimitEnabled) {
		apiConfig.RateLimiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, 0)
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	handlers.NewSearchHandler(rankingService, registry).RegisterRoutes(humaAPI)
	handlers.NewAnalysisHandler(rankingService, analyzer, flags).RegisterRoutes(humaAPI)
	handlers.NewHealthHandler(registry, lex.Version, analyzer != nil).RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.RequestTimeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	logger.Info("Server stopped", nil)
}

func loadLexicon(path string) (*lexicon.Lexicon, error) {
	if path == "" {
		return lexicon.Default(), nil
	}
	return lexicon.Load(path)
}

func loadRegistry(path string) (*sources.Registry, error) {
	if path == "" {
		return sources.MustDefault(), nil
	}
	return sources.Load(path)
}

func init() {
	fmt.Println(`
   ___              __                      ___          __
  / _/______ ___   / /__ ____  _______     / _ \___ ____/ /__ _____
 / _/ __/ -_) -_) / / _ '/ _ \/ __/ -_)   / , _/ _ '/ _  / _ '/ __/
/_//_/  \__/\__/ /_/\_,_/_//_/\__/\__/   /_/|_|\_,_/\_,_/\_,_/_/
	`)
}
