package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/furniture-manager-api/internal/api/handler"
	"github.com/vfg2006/furniture-manager-api/internal/api/handler/router"
	"github.com/vfg2006/furniture-manager-api/internal/config"
	"github.com/vfg2006/furniture-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/furniture-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/furniture-manager-api/pkg/metrics"
	"github.com/vfg2006/furniture-manager-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Dependencies agrupa os serviços usados pelas rotas
type Dependencies struct {
	Reporter      reporting.Reporter
	Authenticator authenticating.Authenticator
	CronJobs      handler.CronJobServices
	Registry      *prometheus.Registry
}

func New(cfg *config.Config, deps Dependencies) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, deps),
			ReadHeaderTimeout: 2 * time.Second,
			// chamadas ao LLM e o PDF podem levar dezenas de segundos
			WriteTimeout: cfg.LLM.Timeout*2 + 10*time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o router com a cadeia de middlewares global
func NewHandler(cfg *config.Config, deps Dependencies) http.Handler {
	lookback := cfg.Analytics.LookbackDays
	if deps.Registry == nil {
		deps.Registry = prometheus.NewRegistry()
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Metrics(deps.Registry)...),
		router.WithRoutes(handler.Authentication(deps.Authenticator)...),
		router.WithRoutes(handler.Analytics(deps.Reporter, lookback)...),
		router.WithRoutes(handler.AI(deps.Reporter, lookback)...),
		router.WithRoutes(handler.CronJobs(deps.CronJobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(metrics.NewHTTPMetrics(deps.Registry)),
		middleware.Cors(),
		middleware.AuthMiddleware(deps.Authenticator, cfg.Auth.Enabled),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
