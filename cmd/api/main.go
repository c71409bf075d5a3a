package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/FarazAhsan11/candidate-management/config"
	_ "github.com/FarazAhsan11/candidate-management/docs" // Important for Swagger
	v1 "github.com/FarazAhsan11/candidate-management/internal/delivery/http/v1"
	"github.com/FarazAhsan11/candidate-management/internal/repository/postgres"
	"github.com/FarazAhsan11/candidate-management/internal/usecase"
	"github.com/FarazAhsan11/candidate-management/pkg/database"
	"github.com/FarazAhsan11/candidate-management/pkg/logger"
	"github.com/FarazAhsan11/candidate-management/pkg/redis"
	"github.com/FarazAhsan11/candidate-management/pkg/storage"
	"github.com/FarazAhsan11/candidate-management/pkg/validation"
)

// @title           Candidate Management API
// @version         1.0
// @description     REST backend for the candidate tracking dashboard.
// @host            localhost:5000
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting candidate management backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting; optional)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}

	// 5. Setup Blob Store
	blobStore, err := storage.NewS3Store(context.Background(), storage.NewS3ConfigFromEnv())
	if err != nil {
		logger.Log.Error("Failed to set up resume storage", "error", err)
		os.Exit(1)
	}

	// 6. Setup Repository and UseCase
	validate := validation.New()
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, blobStore, validate)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		CandidateUC: candidateUC,
		Config:      cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
