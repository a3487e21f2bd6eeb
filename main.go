// mistral-tui - A terminal chat client for the Mistral API.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/morganforge/mistral-tui/internal/api"
	"github.com/morganforge/mistral-tui/internal/cli"
	"github.com/morganforge/mistral-tui/internal/config"
	"github.com/morganforge/mistral-tui/internal/logging"
	"github.com/morganforge/mistral-tui/internal/storage"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if _, err := logging.Init(cfg.Log); err != nil {
		// Logging failures should not block chatting.
		fmt.Fprintln(os.Stderr, "Warning: logging disabled:", err)
	}
	slog.Info("starting mistral-tui",
		"version", Version,
		"commit", GitCommit,
		"built", BuildDate,
		"model", cfg.Model)

	if cfg.API.Key == "" {
		return fmt.Errorf("MISTRAL_API_KEY must be set in the environment or a .env file")
	}

	client := api.New(cfg)

	var store *storage.Store
	if dir, err := config.EnsureDir(); err == nil {
		store, err = storage.Open(filepath.Join(dir, "chats.db"))
		if err != nil {
			slog.Warn("conversation persistence disabled", "error", err)
			store = nil
		}
	}
	if store != nil {
		defer store.Close()
	}

	// Hot-reload the model name when the config file changes.
	if path, err := config.Path(); err == nil {
		if w, err := config.NewWatcher(path, 500*time.Millisecond, func(next *config.Config) {
			client.SetModel(next.Model)
			slog.Info("configuration reloaded", "model", next.Model)
		}); err == nil {
			if err := w.Watch(); err == nil {
				defer w.Close()
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repl := cli.New(cfg, client, store)
	return repl.Run(ctx)
}
