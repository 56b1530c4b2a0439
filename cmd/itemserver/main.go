package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/ItemRegistry_Go/internal/config"
	"github.com/osse101/ItemRegistry_Go/internal/domain"
	"github.com/osse101/ItemRegistry_Go/internal/handler"
	"github.com/osse101/ItemRegistry_Go/internal/item"
	"github.com/osse101/ItemRegistry_Go/internal/script"
	"github.com/osse101/ItemRegistry_Go/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	registry := item.NewRegistry()
	loader := item.NewLoader(registry, script.NewBlockCompiler())

	ctx := context.Background()
	if _, err := loader.LoadAll(ctx, cfg.ItemDBPaths); err != nil {
		if errors.Is(err, domain.ErrOpenDatabase) {
			slog.Error("Failed to open item database", "error", err)
			os.Exit(1)
		}
		// Bad lines were skipped and logged; serve what loaded.
		slog.Warn("Item database loaded with errors", "records", registry.Len())
	}

	aliasCache := handler.NewAliasCache(cfg.AliasCacheSize, cfg.AliasCacheTTL)
	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, registry, loader, cfg.ItemDBPaths, aliasCache)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}

	slog.Info("Releasing item registry", "records", registry.Len())
	registry.Clear()
}
