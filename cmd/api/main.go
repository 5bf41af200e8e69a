package main

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/furniture-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/furniture-manager-api/infrastructure/document"
	"github.com/vfg2006/furniture-manager-api/infrastructure/integrator/llm"
	"github.com/vfg2006/furniture-manager-api/infrastructure/repository"
	"github.com/vfg2006/furniture-manager-api/internal/api"
	"github.com/vfg2006/furniture-manager-api/internal/api/handler"
	"github.com/vfg2006/furniture-manager-api/internal/config"
	"github.com/vfg2006/furniture-manager-api/internal/scheduler"
	"github.com/vfg2006/furniture-manager-api/internal/usecases/analyzing"
	"github.com/vfg2006/furniture-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/furniture-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/furniture-manager-api/pkg/log"
	"github.com/vfg2006/furniture-manager-api/pkg/metrics"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel, cfg.App.Env)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	metricsRepo := repository.NewMetricsRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	analyzer := analyzing.NewService(metricsRepo, cfg)

	llmMetrics := metrics.NewLLMMetrics(registry)
	llmIntegrator := llm.New(cfg, llmMetrics)
	logrus.WithField("provider", llmIntegrator.Name()).Info("Provedor de LLM configurado")

	reporter := reporting.NewService(
		cfg,
		analyzer,
		llmIntegrator,
		document.NewTrendsRenderer(),
		llmMetrics,
	)

	weeklyReportService := scheduler.NewWeeklyReportService(reporter, cfg, metrics.NewCronJobMetrics(registry))
	if err := weeklyReportService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do relatório semanal")
	} else {
		logrus.Info("Agendador do relatório semanal iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Dependencies{
		Reporter:      reporter,
		Authenticator: authenticator,
		CronJobs: handler.CronJobServices{
			WeeklyReport: weeklyReportService,
		},
		Registry: registry,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
