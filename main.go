package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ledgerflow/statement-engine/internal/api"
	"github.com/ledgerflow/statement-engine/internal/config"
	"github.com/ledgerflow/statement-engine/internal/ingest"
	"github.com/ledgerflow/statement-engine/internal/ledger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", "err", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "statement-engine",
	})
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	// Standalone runs use the in-memory ledger; deployments inject the
	// relational store behind the same lookup interface.
	store := ledger.NewInMemory()
	svc := ingest.New(store, cfg.MaxUploadBytes, logger)

	app := fiber.New(fiber.Config{
		AppName:   "statement-engine",
		BodyLimit: cfg.MaxUploadBytes * 2, // base64 inflates by ~4/3
	})
	app.Use(recover.New())

	h := &api.Handler{Service: svc, Logger: logger}
	h.Register(app)

	logger.Info("listening", "addr", cfg.ListenAddr)
	if err := app.Listen(cfg.ListenAddr); err != nil {
		logger.Fatal("server stopped", "err", err)
	}
}
