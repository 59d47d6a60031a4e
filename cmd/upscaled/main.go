// Upscaled orchestrator server: provides the HTTP API, fans predictions out
// to the inference provider, and reconciles jobs whose callbacks went silent.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/pixelrelay/upscaled/pkg/api"
	"github.com/pixelrelay/upscaled/pkg/blobstore"
	"github.com/pixelrelay/upscaled/pkg/config"
	"github.com/pixelrelay/upscaled/pkg/database"
	"github.com/pixelrelay/upscaled/pkg/orchestrator"
	"github.com/pixelrelay/upscaled/pkg/planner"
	"github.com/pixelrelay/upscaled/pkg/provider"
	"github.com/pixelrelay/upscaled/pkg/quota"
	"github.com/pixelrelay/upscaled/pkg/reconciler"
	"github.com/pixelrelay/upscaled/pkg/registry"
	"github.com/pixelrelay/upscaled/pkg/services"
	"github.com/pixelrelay/upscaled/pkg/status"
	"github.com/pixelrelay/upscaled/pkg/stitcher"
	"github.com/pixelrelay/upscaled/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	slog.Info("Starting upscaled", "version", version.Full())

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	jobService := services.NewJobService(dbClient.Client)
	tileService := services.NewTileService(dbClient.Client)
	modelRegistry := registry.New()
	jobPlanner := planner.New(modelRegistry)
	planOracle := quota.NewOracle()
	slog.Info("Services initialized")

	// 4. Provider client and blob store
	providerClient := provider.NewHTTPClient(cfg.Provider, cfg.Launch)
	blobStore, err := blobstore.NewS3Store(ctx, cfg.Blob)
	if err != nil {
		slog.Error("Failed to initialize blob store", "error", err)
		os.Exit(1)
	}
	slog.Info("Blob store initialized", "bucket", cfg.Blob.Bucket)

	// 5. Pipeline: stitcher, orchestrator, reconciler
	jobStitcher := stitcher.New(cfg, jobService, tileService, providerClient, blobStore)
	orch := orchestrator.New(cfg, jobService, tileService, jobPlanner,
		modelRegistry, planOracle, providerClient, blobStore, jobStitcher)

	rec := reconciler.NewService(&cfg.Reconciler, jobService, tileService, orch, providerClient)
	rec.Start(ctx)
	defer rec.Stop()

	// 6. HTTP server
	statusReader := status.NewReader(jobService, tileService)
	server := api.NewServer(cfg, dbClient, jobService, orch, rec, jobStitcher,
		statusReader, modelRegistry)

	httpServer := &http.Server{
		Addr:    ":" + cfg.HTTP.Port,
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Upscaled started successfully")

	// 7. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 8. Graceful shutdown. In-flight predictions keep running remotely; the
	// reconciler picks their callbacks up on the next start.
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
