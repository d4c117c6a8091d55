// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/survey-builder/cliparse"
	"github.com/danielhkuo/survey-builder/db"
	"github.com/danielhkuo/survey-builder/middleware"
	"github.com/danielhkuo/survey-builder/router"
	"github.com/danielhkuo/survey-builder/store"
)

func main() {
	var err error

	if err := cliparse.LoadDotEnv(".env"); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	kv, closeStore, err := openStore(cfg)
	if err != nil {
		slog.Error("storage setup failed", "error", err)
		os.Exit(1)
	}
	defer closeStore()
	slog.Info("Storage ready", "type", cfg.DatabaseType, "key", cfg.SurveysKey)

	repo := store.NewSurveys(kv, cfg.SurveysKey)

	// Create router
	mux := router.NewRouter(repo)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// openStore connects the configured backend and returns a cleanup func.
func openStore(cfg cliparse.Config) (store.KV, func(), error) {
	if cfg.DatabaseType == db.TypeMemory {
		return store.NewMemory(), func() {}, nil
	}

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	// Create schema (tables)
	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		return nil, nil, err
	}

	kv, err := store.NewSQL(conn, cfg.DatabaseType)
	if err != nil {
		conn.Close()
		return nil, nil, err
	}
	return kv, func() { conn.Close() }, nil
}
