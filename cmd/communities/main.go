package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/agenthands/curriculum/internal/config"
	"github.com/agenthands/curriculum/internal/core"
	"github.com/agenthands/curriculum/internal/core/community"
	"github.com/agenthands/curriculum/internal/driver"
)

// Recomputes Module.community from the SIMILAR graph. Run it after the
// similarity edges are reloaded.
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

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	detector, err := community.ForAlgorithm(cfg.Community.Algorithm, cfg.Community.MaxIterations)
	if err != nil {
		logger.Fatal("invalid community config", zap.Error(err))
	}

	ctx := context.Background()
	d, err := driver.NewNeo4jDriver(ctx, cfg.Neo4j, logger)
	if err != nil {
		logger.Fatal("failed to connect to neo4j", zap.String("uri", cfg.Neo4j.URI), zap.Error(err))
	}
	defer d.Close(ctx)

	planner := core.NewPlanner(d, cfg.Recommendation.Limit, logger)
	n, err := planner.RefreshCommunities(ctx, detector)
	if err != nil {
		logger.Fatal("failed to refresh communities", zap.Error(err))
	}
	logger.Info("done", zap.String("algorithm", cfg.Community.Algorithm), zap.Int("communities", n))
}
