// Copyright 2025 ShopHub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// The storefront binary serves the shop HTTP API backed by a SQLite store.
// The store handle is opened and initialized here, once, before the first
// request is accepted, and injected into the API layer.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heptiolabs/healthcheck"
	"github.com/shophub/storefront/pkg/api"
	"github.com/shophub/storefront/pkg/env"
	"github.com/shophub/storefront/pkg/logger"
	"github.com/shophub/storefront/pkg/store"
	"go.uber.org/zap"
)

var buildtime string

func main() {
	logger.Initialize()

	defer func() { _ = zap.S().Sync() }()

	zap.S().Infof("This is storefront build date: %s", buildtime)

	address, err := env.GetAsString("STOREFRONT_ADDRESS", false, ":8080")
	if err != nil {
		zap.S().Fatalf("Failed to read config: %s", err)
	}

	healthAddress, err := env.GetAsString("STOREFRONT_HEALTH_ADDRESS", false, ":8086")
	if err != nil {
		zap.S().Fatalf("Failed to read config: %s", err)
	}

	dbPath, err := env.GetAsString("STOREFRONT_DB_PATH", false, store.DefaultConfig().DBPath)
	if err != nil {
		zap.S().Fatalf("Failed to read config: %s", err)
	}

	s, err := store.New(store.Config{DBPath: dbPath})
	if err != nil {
		zap.S().Fatalf("Failed to open store: %s", err)
	}

	initCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.Initialize(initCtx); err != nil {
		zap.S().Fatalf("Failed to initialize store: %s", err)
	}

	health := healthcheck.NewHandler()
	health.AddLivenessCheck("goroutine-threshold", healthcheck.GoroutineCountCheck(100))
	health.AddReadinessCheck("store", s.Ping)

	go func() {
		if err := http.ListenAndServe(healthAddress, health); err != nil {
			zap.S().Errorf("Healthcheck listener failed: %s", err)
		}
	}()

	server := &http.Server{
		Addr:              address,
		Handler:           api.NewRouter(s),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zap.S().Infof("Serving storefront API on %s", address)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.S().Fatalf("HTTP server failed: %s", err)
		}
	}()

	// Kubernetes sends SIGTERM 30 seconds before killing the pod; drain
	// in-flight requests and close the store within that window.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigs

	zap.S().Infof("Received signal %s, shutting down", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zap.S().Errorf("HTTP server shutdown failed: %s", err)
	}

	if err := s.Close(); err != nil {
		zap.S().Errorf("Store close failed: %s", err)
	}

	zap.S().Info("Successful shutdown. Exiting.")
}
