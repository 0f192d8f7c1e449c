// cmd/seeder/main.go
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/unclebandit/anything-security-console/internal/client"
	"github.com/unclebandit/anything-security-console/internal/config"
)

func main() {
	file := flag.String("file", "seed/fixtures.yaml", "fixture file to load")
	flag.Parse()

	logger := config.InitLogger()
	defer func() { _ = logger.Sync() }()
	cfg := config.Load(logger)

	fixtures, err := LoadFixtures(*file)
	if err != nil {
		logger.Fatal("failed to load fixtures", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	api := client.New(cfg.APIURL, nil)
	res, err := NewSeeder(api, logger).Seed(ctx, fixtures)
	if err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}

	logger.Info("🌱 seeding completed",
		zap.String("api_url", cfg.APIURL),
		zap.Int("created", res.Created),
		zap.Int("skipped", res.Skipped),
		zap.Int("failed", res.Failed))
	if res.Failed > 0 {
		os.Exit(1)
	}
}
