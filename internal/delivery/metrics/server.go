package metrics_server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blogly-service/internal/logger"
)

type MetricsServer struct {
	httpServer *http.Server
	log        *logger.Logger
}

func NewMetricsServer(address string, port int, log *logger.Logger) *MetricsServer {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &MetricsServer{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", address, port),
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
		log: log,
	}
}

func (s *MetricsServer) Run() error {
	s.log.Info("Metrics server started", slog.String("address", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *MetricsServer) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
