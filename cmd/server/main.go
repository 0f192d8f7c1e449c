// cmd/server/main.go
package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/unclebandit/anything-security-console/internal/client"
	"github.com/unclebandit/anything-security-console/internal/config"
	"github.com/unclebandit/anything-security-console/internal/controller"
	"github.com/unclebandit/anything-security-console/internal/db"
	"github.com/unclebandit/anything-security-console/internal/handler"
	"github.com/unclebandit/anything-security-console/internal/i18n"
	"github.com/unclebandit/anything-security-console/internal/queue"
	"github.com/unclebandit/anything-security-console/internal/repository"
	"github.com/unclebandit/anything-security-console/internal/service"
)

func main() {
	logger := config.InitLogger()
	defer func() { _ = logger.Sync() }()

	cfg := config.Load(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Audit trail: Postgres when configured, otherwise kept in memory
	var (
		auditRepo repository.AuditRepositoryInterface = repository.NewMemoryAuditRepository(0)
		conn      *sql.DB
	)
	if cfg.DatabaseURL != "" {
		var err error
		conn, err = db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("failed to connect to DB", zap.Error(err))
		}
		defer conn.Close()
		if err := db.Migrate(ctx, conn); err != nil {
			logger.Fatal("failed to migrate audit schema", zap.Error(err))
		}
		auditRepo = &repository.AuditRepository{DB: conn}
	}

	var (
		q        queue.Queue
		activity *service.ActivityService
	)
	if cfg.AMQPURL != "" {
		// cmd/worker consumes and stores the events
		amqpQueue, err := queue.DialAMQP(cfg.AMQPURL, logger)
		if err != nil {
			logger.Fatal("failed to connect to RabbitMQ", zap.Error(err))
		}
		defer func() { _ = amqpQueue.Close() }()
		q = amqpQueue
		if conn != nil {
			activity = &service.ActivityService{Reader: auditRepo}
		}
	} else {
		memQueue := queue.NewInMemoryQueue(logger)
		if err := queue.StartAuditSubscriber(memQueue, cfg.AuditQueue, auditRepo, logger); err != nil {
			logger.Fatal("failed to start audit subscriber", zap.Error(err))
		}
		defer memQueue.Wait()
		q = memQueue
		activity = &service.ActivityService{Reader: auditRepo}
	}

	api := client.New(cfg.APIURL, nil)
	validator := service.NewValidator()
	auditor := &service.QueueAuditor{Queue: q, Topic: cfg.AuditQueue, Logger: logger}

	dashboardService := &service.DashboardService{
		Campaigns:   api,
		Assets:      api,
		Alerts:      api,
		Templates:   api,
		Logger:      logger,
		RecentLimit: cfg.RecentCampaigns,
		AlertLimit:  cfg.AlertLimit,
	}
	campaignService := &service.CampaignService{
		Campaigns: api,
		Templates: api,
		Validator: validator,
		Auditor:   auditor,
		Logger:    logger,
	}

	r, err := handler.NewRouter(handler.Deps{
		Dashboard: dashboardService,
		Campaigns: campaignService,
		Templates: &service.TemplateService{Templates: api, Validator: validator, Auditor: auditor, Logger: logger},
		Assets:    &service.AssetService{Assets: api, Validator: validator, Auditor: auditor, Logger: logger},
		CVE: &service.CVEService{
			Alerts:         api,
			Assets:         api,
			Auditor:        auditor,
			Logger:         logger,
			ScanRefresh:    cfg.ScanRefreshDelay,
			ScanAllRefresh: cfg.ScanAllRefreshDelay,
		},
		Activity: activity,
		Logger:   logger,
		Lang:     i18n.Parse(cfg.Lang, i18n.Korean),
	})
	if err != nil {
		logger.Fatal("failed to build router", zap.Error(err))
	}

	consoleController := &controller.ConsoleController{
		Dashboard: dashboardService,
		Campaigns: campaignService,
		Logger:    logger,
	}
	r.Route("/console/api", consoleController.Routes)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("🚀 console running", zap.String("addr", cfg.ListenAddr), zap.String("api_url", cfg.APIURL))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server failed", zap.Error(err))
	}
	logger.Info("console stopped")
}
