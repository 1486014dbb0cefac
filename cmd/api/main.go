package main

import (
	"context"
	"log"

	"github.com/Htttpkaran/ai-resume-checker/internal/analyses"
	"github.com/Htttpkaran/ai-resume-checker/internal/llm/gemini"
	"github.com/Htttpkaran/ai-resume-checker/internal/shared/config"
	"github.com/Htttpkaran/ai-resume-checker/internal/shared/server"
)

func main() {
	cfg := config.Load()

	// The Gemini client is built once here and injected; a missing
	// credential aborts startup instead of failing the first request.
	llmClient, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("gemini client: %v", err)
	}

	svc := &analyses.Service{LLM: llmClient}
	handler := analyses.NewHandler(svc, cfg.MaxUploadBytes)
	r := server.NewRouter(cfg, handler)

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)
	log.Printf("Health check: http://localhost%s/api/health", addr)
	log.Printf("Analyze endpoint: http://localhost%s/api/analyze", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
