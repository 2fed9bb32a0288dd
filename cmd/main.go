package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/tanod_dispatch/internal/config"
	v1 "github.com/shenikar/tanod_dispatch/internal/handler/http/v1"
	"github.com/shenikar/tanod_dispatch/internal/metrics"
	"github.com/shenikar/tanod_dispatch/internal/poller"
	"github.com/shenikar/tanod_dispatch/internal/repository"
	"github.com/shenikar/tanod_dispatch/internal/service"
	"github.com/shenikar/tanod_dispatch/internal/webhook"
	"github.com/shenikar/tanod_dispatch/pkg/logger"
	"github.com/shenikar/tanod_dispatch/pkg/postgres"
	redisclient "github.com/shenikar/tanod_dispatch/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/tanod_dispatch/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Tanod Dispatch API
// @version 1.0
// @description Incident dispatch, duty roster and analytics API for barangay tanod patrols.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.WithField("source", cfg.MigrationsPath).Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(cfg.MigrationsPath, migrationURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	metrics.Register()

	// Издатель и воркер вебхуков
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Инициализация репозиториев
	incidentRepo := repository.NewIncidentRepository(dbpool, redisClient, cfg.IncidentCacheTTL)
	attendanceRepo := repository.NewAttendanceRepository(dbpool)
	typeRepo := repository.NewIncidentTypeRepository(dbpool)
	auditRepo := repository.NewAssignmentAuditRepository(dbpool)

	// Инициализация сервисов; блокировки по инциденту общие для назначения и закрытия
	locks := service.NewKeyedMutex()
	incidentService := service.NewIncidentService(incidentRepo, log, cfg, webhookPublisher, locks)
	dutyService := service.NewDutyService(attendanceRepo, log, cfg)
	assignmentService := service.NewAssignmentService(incidentRepo, dutyService, auditRepo, log, cfg, webhookPublisher, locks)
	analyticsService := service.NewAnalyticsService(incidentRepo, typeRepo, log, cfg)

	// Фоновая синхронизация
	synchronizer := poller.NewSynchronizer(incidentRepo, attendanceRepo, typeRepo, webhookPublisher, log, cfg)
	synchronizer.StartWithContext(ctx)

	// Инициализация хэндлеров
	handler := v1.NewHandler(incidentService, assignmentService, dutyService, analyticsService, synchronizer, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	if err := synchronizer.StopWithContext(shutdownCtx); err != nil {
		log.Errorf("Synchronizer did not stop cleanly: %v", err)
	}

	cancel()
	log.Info("Server gracefully stopped")
}
