package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/josinaldojr/docchat/internal/config"
	"github.com/josinaldojr/docchat/internal/docs"
	apphttp "github.com/josinaldojr/docchat/internal/http"
	"github.com/josinaldojr/docchat/internal/llm"
	"github.com/josinaldojr/docchat/internal/logging"
	"github.com/josinaldojr/docchat/internal/rag"
)

func main() {
	ctx := context.Background()

	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	var llmClient rag.LLMClient
	geminiClient, err := llm.NewGeminiClient(ctx, llm.GeminiConfig{
		APIKey:     cfg.APIKey,
		Model:      cfg.Model,
		BaseURL:    cfg.BaseURL,
		APIVersion: cfg.APIVersion,
	}, logger.Named("gemini"))
	switch {
	case errors.Is(err, llm.ErrMissingAPIKey):
		logger.Warn("no Gemini API key configured, /chat will fail until one is set")
		llmClient = llm.NewUnconfiguredClient(logger.Named("gemini"))
	case err != nil:
		logger.Fatal("failed to init Gemini client", zap.Error(err))
	default:
		llmClient = geminiClient
	}

	loader := docs.NewLoader(cfg.DocumentsDir, logger.Named("docs"))
	ragService := rag.NewService(loader, llmClient)

	h := apphttp.NewHandler(ragService, logger.Named("http"))
	router := apphttp.NewRouter(h)

	handler := apphttp.WithCORS(router, cfg.AllowedOrigins)

	addr := ":" + cfg.Port
	logger.Info("API listening",
		zap.String("addr", addr),
		zap.String("documents_dir", cfg.DocumentsDir),
		zap.String("model", cfg.Model),
	)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
