package main

import (
	"context"
	"flag"
	"log"

	"github.com/example/cropdoctor/internal/catalog"
	"github.com/example/cropdoctor/internal/chat"
	"github.com/example/cropdoctor/internal/config"
	"github.com/example/cropdoctor/internal/diagnose"
	"github.com/example/cropdoctor/internal/i18n"
	"github.com/example/cropdoctor/internal/logger"
	"github.com/example/cropdoctor/internal/server"
	"github.com/example/cropdoctor/internal/weather"
)

func main() {
	configPath := flag.String("config", config.GetConfigPath(), "path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger.Init(cfg.Log)

	// A missing translation key is a startup failure, not a blank screen.
	if err := i18n.Validate(); err != nil {
		log.Fatal("Invalid translation bundles:", err)
	}

	// Initialize catalog database
	db, err := catalog.NewSQLiteDB(cfg.Database.Path)
	if err != nil {
		log.Fatal("Failed to open catalog database:", err)
	}
	defer db.Close()

	ctx := context.Background()

	// Initialize AI clients
	analyzer, err := diagnose.NewAnalyzer(cfg.AI)
	if err != nil {
		log.Fatal("Failed to create analyzer:", err)
	}
	if err := analyzer.Load(ctx); err != nil {
		log.Fatal("Failed to load analyzer:", err)
	}

	assistant := chat.NewGemini(cfg.AI)
	if err := assistant.Load(ctx); err != nil {
		log.Fatal("Failed to load chat assistant:", err)
	}

	weatherClient := weather.NewClient(cfg.Weather)

	// Initialize and start server
	srv := server.New(db, analyzer, assistant, weatherClient, cfg.Server.Debug)
	if err := srv.Start(cfg.Server.Port, cfg.Server.StaticDir); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
