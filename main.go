package main

import (
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/kintai-works/kintai-engine/pkg/config"
	"github.com/kintai-works/kintai-engine/pkg/handlers"
	"github.com/kintai-works/kintai-engine/pkg/llm"
	"github.com/kintai-works/kintai-engine/pkg/middleware"
	"github.com/kintai-works/kintai-engine/pkg/parser"
	"github.com/kintai-works/kintai-engine/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := newLogger(cfg.Env)
	defer func() { _ = logger.Sync() }()

	var client llm.Client
	if cfg.AI.IsAvailable() {
		client, err = llm.NewClientFromConfig(&llm.Config{
			Provider:  cfg.AI.Provider,
			BaseURL:   cfg.AI.BaseURL,
			Model:     cfg.AI.Model,
			APIKey:    cfg.AI.APIKey,
			MaxTokens: cfg.AI.MaxTokens,
		}, logger)
		if err != nil {
			logger.Fatal("Failed to create LLM client", zap.Error(err))
		}
		logger.Info("LLM collaborator configured",
			zap.String("provider", client.Provider()),
			zap.String("model", client.Model()))
	} else {
		logger.Warn("No LLM collaborator configured; analysis will return local findings only")
	}

	analysisService := services.NewAnalysisService(
		parser.New(logger),
		client,
		cfg.AI.Timeout(),
		logger,
	)

	mux := http.NewServeMux()
	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewAnalyzeHandler(analysisService, cfg.MaxUploadBytes, logger).RegisterRoutes(mux)

	handler := middleware.RequestLogger(logger)(mux)

	addr := cfg.BindAddr + ":" + cfg.Port
	logger.Info("Starting kintai-engine",
		zap.String("addr", addr),
		zap.String("version", cfg.Version),
		zap.String("environment", cfg.Env))

	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

// newLogger builds the process logger: human-readable in local
// development, JSON elsewhere.
func newLogger(env string) *zap.Logger {
	if env == "local" || env == "dev" {
		logger, err := zap.NewDevelopmentConfig().Build()
		if err != nil {
			log.Fatalf("Failed to create logger: %v", err)
		}
		return logger
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	return logger
}
