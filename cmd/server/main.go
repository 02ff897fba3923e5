package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/agenthands/curriculum/internal/auth"
	"github.com/agenthands/curriculum/internal/config"
	"github.com/agenthands/curriculum/internal/core"
	"github.com/agenthands/curriculum/internal/driver"
	"github.com/agenthands/curriculum/internal/metrics"
	"github.com/agenthands/curriculum/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	cfg.ApplyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d, err := driver.NewNeo4jDriver(ctx, cfg.Neo4j, logger)
	if err != nil {
		logger.Fatal("failed to connect to neo4j", zap.String("uri", cfg.Neo4j.URI), zap.Error(err))
	}
	defer d.Close(context.Background())

	planner := core.NewPlanner(d, cfg.Recommendation.Limit, logger)
	if err := planner.BuildIndices(ctx); err != nil {
		logger.Warn("failed to build indices", zap.Error(err))
	}

	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		logger.Fatal("failed to register metrics", zap.Error(err))
	}

	tokens := auth.NewTokenIssuer(cfg.Auth.SecretKey, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)
	authSvc := auth.NewService(planner, tokens, logger)

	gin.SetMode(cfg.Server.Mode)
	srv := server.NewServer(planner, authSvc, tokens, logger)

	httpServer := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           srv.SetupRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("port", cfg.Server.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Server.Mode == gin.DebugMode {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}
