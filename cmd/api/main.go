package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/linguahub/moderation-service/internal/api/http"
	"github.com/linguahub/moderation-service/internal/api/http/handlers"
	"github.com/linguahub/moderation-service/internal/auth"
	"github.com/linguahub/moderation-service/internal/config"
	"github.com/linguahub/moderation-service/internal/events"
	"github.com/linguahub/moderation-service/internal/observability"
	"github.com/linguahub/moderation-service/internal/persistence"
	"github.com/linguahub/moderation-service/internal/repository"
	"github.com/linguahub/moderation-service/internal/service"
	"github.com/linguahub/moderation-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	reportRepo := repository.NewReportRepository(pool)
	auditRepo := repository.NewAuditRepository(pool)
	moderationStore := repository.NewModerationStore(pool)

	if err := persistence.Seed(ctx, *cfg, userRepo, logger); err != nil {
		logger.Fatal("failed to seed users", zap.Error(err))
	}

	lockouts := auth.NewLockoutCache(redis.Client)
	dispatcher := events.NewInMemoryDispatcher()

	auditService := service.NewAuditService(auditRepo, logger)
	authService := service.NewAuthService(*cfg, userRepo)
	reportService := service.NewReportService(reportRepo, userRepo, dispatcher)
	moderationService := service.NewModerationService(service.ModerationDependencies{
		ReportRepo: reportRepo,
		UserRepo:   userRepo,
		Store:      moderationStore,
		Audit:      auditService,
		Lockouts:   lockouts,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	directoryService := service.NewDirectoryService(service.DirectoryDependencies{
		UserRepo:   userRepo,
		Audit:      auditService,
		Lockouts:   lockouts,
		Dispatcher: dispatcher,
		BcryptCost: cfg.Auth.BcryptCost,
		Logger:     logger,
	})
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo, lockouts)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(),
		Auth:           handlers.NewAuthHandler(authService),
		Reports:        handlers.NewReportsHandler(reportService),
		Moderation:     handlers.NewModerationHandler(moderationService),
		Users:          handlers.NewUsersHandler(directoryService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
