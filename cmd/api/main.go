package main

import (
	"log"

	"ats-backend/internal/llm/nemotron"
	"ats-backend/internal/server"
	"ats-backend/internal/shared/config"
)

func main() {
	cfg := config.Load()

	client, err := nemotron.NewClient(cfg.APIBaseURL, cfg.APIKey, cfg.Model)
	if err != nil {
		log.Fatalf("llm client: %v", err)
	}

	r := server.NewRouter(cfg, client)

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
