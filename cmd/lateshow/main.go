package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/brimiq/Late-Show-CodeChallenge/internal/config"
	"github.com/brimiq/Late-Show-CodeChallenge/internal/database"
	"github.com/brimiq/Late-Show-CodeChallenge/internal/logger"
	"github.com/brimiq/Late-Show-CodeChallenge/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML or JSON config file")
	flag.Parse()

	if err := config.Load(*configPath); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	cfg := config.Get()
	logger.SetLevel(cfg.Logging.Level)

	if err := database.Initialize(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	r := server.SetupRouter()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting Late Show API on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
