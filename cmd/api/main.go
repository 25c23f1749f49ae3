package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/plastinin/projectgrid/internal/adapter/generator"
	"github.com/plastinin/projectgrid/internal/adapter/http/handler"
	"github.com/plastinin/projectgrid/internal/adapter/metrics"
	"github.com/plastinin/projectgrid/internal/adapter/repository"
	"github.com/plastinin/projectgrid/internal/config"
	"github.com/plastinin/projectgrid/internal/usecase"
	"github.com/plastinin/projectgrid/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apphttp "github.com/plastinin/projectgrid/internal/adapter/http"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	// Инициализируем логгер
	log := logger.Must(cfg.Log.Level, cfg.Log.Format)
	defer log.Sync()

	log.Info("Starting projectgrid API",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	// Генерируем набор данных один раз до старта сервера
	projects := generator.New(cfg.Dataset.Seed).Generate(cfg.Dataset.Size)
	projectRepo, err := repository.NewProjectRepository(projects)
	if err != nil {
		log.Fatal("Failed to build dataset", zap.Error(err))
	}
	log.Info("Dataset generated",
		zap.Int("records", projectRepo.Count()),
		zap.Uint64("seed", cfg.Dataset.Seed),
	)

	// Метрики
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	queryMetrics := metrics.New(registry)

	// Инициализируем use cases
	projectUC := usecase.NewProjectUseCase(projectRepo, queryMetrics, cfg.Query.DefaultPageSize, log)

	// Инициализируем handlers
	projectHandler := handler.NewProjectHandler(projectUC, cfg.Query.DefaultPageSize, log)
	healthHandler := handler.NewHealthHandler(projectUC, log)
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	// Создаём роутер
	router := apphttp.NewRouter(projectHandler, healthHandler, metricsHandler, log)

	// Создаём HTTP сервер
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Info("HTTP server starting",
			zap.String("addr", cfg.Server.Addr()),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server stopped")
}
