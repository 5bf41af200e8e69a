package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/furniture-manager-api/internal/config"
	"github.com/vfg2006/furniture-manager-api/internal/domain"
	"github.com/vfg2006/furniture-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/furniture-manager-api/pkg/log"
	"github.com/vfg2006/furniture-manager-api/pkg/metrics"
	"github.com/vfg2006/furniture-manager-api/pkg/utils"
)

const WeeklyReportJob = "weekly-report"

var ErrJobRunning = errors.New("relatório semanal já em andamento")

// WeeklyReportConfig representa a configuração do relatório semanal de tendências
type WeeklyReportConfig struct {
	CronSchedule string
	LookbackDays int
	OutputDir    string
	Enabled      bool
}

// WeeklyReportService gera periodicamente o PDF de tendências e grava em disco
type WeeklyReportService struct {
	scheduler *gocron.Scheduler
	config    WeeklyReportConfig
	reporter  reporting.Reporter
	metrics   *metrics.CronJobMetrics
	now       func() time.Time

	runMutex        sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastFile        string
	lastError       string
}

func NewWeeklyReportService(
	reporter reporting.Reporter,
	appConfig *config.Config,
	m *metrics.CronJobMetrics,
) *WeeklyReportService {
	reportConfig := WeeklyReportConfig{
		CronSchedule: appConfig.WeeklyReport.CronSchedule,
		LookbackDays: appConfig.WeeklyReport.LookbackDays,
		OutputDir:    appConfig.WeeklyReport.OutputDir,
		Enabled:      appConfig.WeeklyReport.Enabled,
	}
	if reportConfig.LookbackDays <= 0 {
		reportConfig.LookbackDays = 7
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reportConfig.CronSchedule,
		"lookback_days": reportConfig.LookbackDays,
		"output_dir":    reportConfig.OutputDir,
		"enabled":       reportConfig.Enabled,
	}).Info("Configuração do relatório semanal carregada")

	return &WeeklyReportService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    reportConfig,
		reporter:  reporter,
		metrics:   m,
		now:       time.Now,
	}
}

// Start agenda o job; o agendador para quando o contexto é cancelado
func (s *WeeklyReportService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Relatório semanal desabilitado por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runScheduled(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar relatório semanal: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

func (s *WeeklyReportService) Stop() {
	if s.scheduler.IsRunning() {
		logrus.Info("Parando agendador do relatório semanal")
		s.scheduler.Stop()
	}
}

func (s *WeeklyReportService) runScheduled(ctx context.Context) {
	if _, err := s.Run(ctx); err != nil && !errors.Is(err, ErrJobRunning) {
		log.ForContext(ctx).WithError(err).Error("Erro ao gerar relatório semanal")
	}
}

// ReportRange cobre os últimos LookbackDays dias completos, terminando ontem
func (s *WeeklyReportService) ReportRange() domain.DateRange {
	to := domain.DateOf(s.now()).AddDate(0, 0, -1)
	from := to.AddDate(0, 0, -(s.config.LookbackDays - 1))
	return domain.DateRange{From: from, To: to}
}

// Run executa o job de forma síncrona e devolve o caminho do arquivo gerado
func (s *WeeklyReportService) Run(ctx context.Context) (string, error) {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Info("Relatório semanal já em andamento, ignorando")
		return "", ErrJobRunning
	}
	s.running = true
	s.lastStartedAt = s.now()
	s.runMutex.Unlock()

	ctx, _ = log.WithCorrelationIDValue(ctx, "")
	startTime := time.Now()

	path, err := s.generate(ctx)

	s.metrics.ObserveDuration(WeeklyReportJob, time.Since(startTime))

	s.runMutex.Lock()
	defer s.runMutex.Unlock()
	s.running = false

	if err != nil {
		s.metrics.IncFailure(WeeklyReportJob)
		s.lastError = err.Error()
		return "", err
	}

	s.metrics.IncSuccess(WeeklyReportJob)
	s.lastError = ""
	s.lastFile = path
	s.lastCompletedAt = s.now()

	log.ForContext(ctx).WithFields(log.Fields{
		"job":      WeeklyReportJob,
		"file":     path,
		"duration": time.Since(startTime).String(),
	}).Info("Relatório semanal gerado")

	return path, nil
}

func (s *WeeklyReportService) generate(ctx context.Context) (string, error) {
	r := s.ReportRange()

	log.ForContext(ctx).WithFields(log.Fields{
		"job":   WeeklyReportJob,
		"range": r.String(),
	}).Info("Gerando relatório semanal de tendências")

	content, filename, err := s.reporter.ExportPDF(ctx, r, true)
	if err != nil {
		return "", errors.Wrap(err, "export pdf")
	}

	id, err := utils.ReportSuffix()
	if err != nil {
		return "", errors.Wrap(err, "generate report suffix")
	}

	if err := os.MkdirAll(s.config.OutputDir, 0o755); err != nil {
		return "", errors.Wrap(err, "create output dir")
	}

	name := strings.TrimSuffix(filename, ".pdf") + "_" + id + ".pdf"
	path := filepath.Join(s.config.OutputDir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", errors.Wrap(err, "write report")
	}

	return path, nil
}

// TriggerManualRun dispara o job em background; retorna false se já houver execução
func (s *WeeklyReportService) TriggerManualRun() bool {
	s.runMutex.Lock()
	running := s.running
	s.runMutex.Unlock()

	if running {
		logrus.Info("Relatório semanal já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando geração manual do relatório semanal")
	go s.runScheduled(context.Background())
	return true
}

func (s *WeeklyReportService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	return map[string]any{
		"enabled":           s.config.Enabled,
		"cron":              s.config.CronSchedule,
		"lookback_days":     s.config.LookbackDays,
		"output_dir":        s.config.OutputDir,
		"running":           s.running,
		"last_started_at":   s.lastStartedAt,
		"last_completed_at": s.lastCompletedAt,
		"last_file":         s.lastFile,
		"last_error":        s.lastError,
	}
}
