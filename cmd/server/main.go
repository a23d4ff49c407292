package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/trustboard-backend/internal/config"
	"github.com/ignatzorin/trustboard-backend/internal/db"
	httpHandlers "github.com/ignatzorin/trustboard-backend/internal/http/handlers"
	httpRouter "github.com/ignatzorin/trustboard-backend/internal/http/router"
	"github.com/ignatzorin/trustboard-backend/internal/logger"
	"github.com/ignatzorin/trustboard-backend/internal/repository"
	"github.com/ignatzorin/trustboard-backend/internal/service"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	// Инициализация логгера
	if cfg.Env == "development" {
		logger.Init("debug")
		logger.SetTextFormatter()
	} else {
		logger.Init("info")
	}

	// Подключение к базе и миграции.
	dbConn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("main: ошибка подключения к базе: %v", err)
	}
	defer safeClose(dbConn)

	if err := db.RunMigrations(ctx, dbConn, cfg.MigrationsPath); err != nil {
		log.Fatalf("main: ошибка миграций: %v", err)
	}

	// Репозитории.
	userRepo := repository.NewUserRepository(dbConn)
	sellerRepo := repository.NewSellerRepository(dbConn)
	orderRepo := repository.NewOrderRepository(dbConn)
	reviewRepo := repository.NewReviewRepository(dbConn)
	disputeRepo := repository.NewDisputeRepository(dbConn)

	// Сервисы.
	sentiment := service.NewSentimentAnalyzer()
	generatorService := service.NewGeneratorService(dbConn, userRepo, sellerRepo, orderRepo, reviewRepo, disputeRepo, sentiment)
	metricsService := service.NewMetricsService(orderRepo, reviewRepo, sellerRepo)
	policyService := service.NewPolicyService(sellerRepo)
	cacheService := service.NewCacheService()

	// HTTP хэндлеры.
	infoHandler := httpHandlers.NewInfoHandler()
	generateHandler := httpHandlers.NewGenerateHandler(generatorService, cacheService)
	metricsHandler := httpHandlers.NewMetricsHandler(metricsService, cacheService, cfg.MetricsCacheTTL)
	dashboardHandler := httpHandlers.NewDashboardHandler(metricsService, userRepo, sellerRepo, orderRepo, reviewRepo, disputeRepo, cacheService, cfg.MetricsCacheTTL)
	sellersHandler := httpHandlers.NewSellersHandler(sellerRepo)
	analyticsHandler := httpHandlers.NewAnalyticsHandler(sellerRepo, userRepo, disputeRepo, policyService)
	healthHandler := httpHandlers.NewHealthHandler(dbConn)

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, infoHandler, generateHandler, metricsHandler, dashboardHandler, sellersHandler, analyticsHandler, healthHandler)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: engine,
	}

	// Завершаем сервер при получении сигнала.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: ошибка остановки http сервера: %v", err)
		}
	}()

	log.Printf("main: HTTP сервер запущен на порту %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
}

// safeClose закрывает соединение с базой.
func safeClose(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		log.Printf("main: ошибка закрытия базы: %v", err)
	}
}
