// cmd/worker/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/unclebandit/anything-security-console/internal/config"
	"github.com/unclebandit/anything-security-console/internal/db"
	"github.com/unclebandit/anything-security-console/internal/queue"
	"github.com/unclebandit/anything-security-console/internal/repository"
	"github.com/unclebandit/anything-security-console/internal/service"
)

func main() {
	logger := config.InitLogger()
	defer func() { _ = logger.Sync() }()

	cfg := config.Load(logger)
	if cfg.AMQPURL == "" || cfg.DatabaseURL == "" {
		logger.Fatal("worker needs AMQP_URL and DATABASE_URL")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to DB", zap.Error(err))
	}
	defer conn.Close()
	if err := db.Migrate(ctx, conn); err != nil {
		logger.Fatal("failed to migrate audit schema", zap.Error(err))
	}

	q, err := queue.DialAMQP(cfg.AMQPURL, logger)
	if err != nil {
		logger.Fatal("failed to connect to RabbitMQ", zap.Error(err))
	}
	defer func() { _ = q.Close() }()

	if err := consume(ctx, q, cfg.AuditQueue, &repository.AuditRepository{DB: conn}, logger); err != nil {
		logger.Fatal("failed to register consumer", zap.Error(err))
	}

	logger.Info("🐇 worker running, waiting for audit events...", zap.String("queue", cfg.AuditQueue))
	<-ctx.Done()
	logger.Info("worker stopping")
}

// consume subscribes to topic and stores each event through a service.Worker.
// The subscription handler returns only after the event is stored, so the
// queue acks or retries on the store's outcome.
func consume(ctx context.Context, q queue.Queue, topic string, store service.AuditStore, logger *zap.Logger) error {
	jobs := make(chan service.AuditJob)
	go service.NewWorker(store, jobs, logger).Start(ctx)

	return q.Subscribe(topic, func(payload any) error {
		event, err := queue.DecodeAuditEvent(payload)
		if err != nil {
			logger.Warn("⚠️ invalid audit event", zap.Error(err))
			return nil // ack, nothing to retry
		}
		return service.Submit(ctx, jobs, event)
	})
}
