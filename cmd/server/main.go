package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"blogly-service/internal/config"
	delivery_http "blogly-service/internal/delivery/http"
	metrics_server "blogly-service/internal/delivery/metrics"
	"blogly-service/internal/logger"
	prometheus_metrics "blogly-service/internal/metrics/prometheus"
	post_postgres "blogly-service/internal/repository/post/postgres"
	"blogly-service/internal/repository/postgres"
	user_postgres "blogly-service/internal/repository/user/postgres"
	post_service "blogly-service/internal/service/post"
	user_service "blogly-service/internal/service/user"
)

func main() {
	cfg := config.MustLoad()
	dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DbName)
	ctx := context.Background()
	log := logger.New(cfg.Env)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Error("Failed to parse postgres poolConfig", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	metrics := prometheus_metrics.NewPrometheusMetricsProvider()
	metrics.SetServiceHealth(true)

	unitOfWork := postgres.NewPostgresUOW(pool, log, metrics)
	userRepo := user_postgres.NewUserRepository(pool, log, metrics)
	postRepo := post_postgres.NewPostRepository(pool, log, metrics)

	userService := user_service.NewUserService(userRepo, unitOfWork, log, metrics)
	postService := post_service.NewPostService(postRepo, userRepo, unitOfWork, log, metrics)

	router := delivery_http.NewRouter(cfg.Env, userService, postService, log, metrics)
	httpServer := delivery_http.NewServer(router, cfg.HTTPServer.Address, cfg.HTTPServer.Port, log)

	metricsServer := metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	<-metricsDone

	log.Info("Server exited")
}
