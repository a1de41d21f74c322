// cmd/storekeep/main.go
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/odalton/storekeep/internal/adapters/file"
	"github.com/odalton/storekeep/internal/adapters/report"
	"github.com/odalton/storekeep/internal/cli"
	"github.com/odalton/storekeep/internal/core/services"
	"github.com/odalton/storekeep/internal/pkg/config"
	"github.com/odalton/storekeep/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	slogger := logger.Setup("info", "text")

	slogger.Info("starting storekeep",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
	)

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.Setup(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("inventory_file", cfg.Storage.InventoryFile),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo := file.NewRepository(cfg.Storage.InventoryFile, slogger)
	reporter := report.NewXLSXWriter(cfg.Storage.ExportDir, slogger)

	inv := services.NewInventory(slogger)
	if _, statErr := os.Stat(cfg.Storage.InventoryFile); statErr == nil {
		products, loadErr := repo.LoadAll(ctx)
		if loadErr != nil {
			slogger.Warn("could not load existing inventory, starting empty",
				slog.String("error", loadErr.Error()))
		} else if loaded, buildErr := services.NewInventoryFrom(slogger, products); buildErr == nil {
			inv = loaded
		} else {
			slogger.Warn("could not build inventory from file, starting empty",
				slog.String("error", buildErr.Error()))
		}
	} else {
		slogger.Info("no inventory file found, starting empty")
	}

	app := cli.New(inv, repo, reporter, os.Stdin, os.Stdout, slogger)
	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		slogger.Error("command loop failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slogger.Info("storekeep stopped")
}
