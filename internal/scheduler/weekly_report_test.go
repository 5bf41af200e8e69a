package scheduler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/furniture-manager-api/internal/config"
	"github.com/vfg2006/furniture-manager-api/internal/domain"
	"github.com/vfg2006/furniture-manager-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/furniture-manager-api/pkg/metrics"
	"go.uber.org/mock/gomock"
)

func newWeeklyReportFixture(t *testing.T, reporter *mocks.MockReporter, outputDir string) (*WeeklyReportService, *prometheus.Registry) {
	t.Helper()

	reg := prometheus.NewRegistry()
	cfg := &config.Config{
		WeeklyReport: config.WeeklyReport{
			CronSchedule: "0 7 * * 1",
			LookbackDays: 7,
			OutputDir:    outputDir,
			Enabled:      true,
		},
	}

	service := NewWeeklyReportService(reporter, cfg, metrics.NewCronJobMetrics(reg))
	service.now = func() time.Time {
		return time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)
	}

	return service, reg
}

func counter(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() == name && len(family.GetMetric()) > 0 {
			return family.GetMetric()[0].GetCounter().GetValue()
		}
	}
	return 0
}

func TestWeeklyReportService_ReportRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newWeeklyReportFixture(t, mocks.NewMockReporter(ctrl), t.TempDir())

	r := service.ReportRange()

	assert.Equal(t, "2025-03-03", r.FromString())
	assert.Equal(t, "2025-03-09", r.ToString())
	assert.Equal(t, 7, r.Days())
}

func TestWeeklyReportService_Run(t *testing.T) {
	expectedRange := domain.DateRange{
		From: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
	}

	t.Run("writes the pdf with a unique suffix", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reporter := mocks.NewMockReporter(ctrl)
		outputDir := filepath.Join(t.TempDir(), "reports")
		service, reg := newWeeklyReportFixture(t, reporter, outputDir)

		reporter.EXPECT().
			ExportPDF(gomock.Any(), expectedRange, true).
			Return([]byte("%PDF-1.3 fake"), "tendencias_2025-03-03_a_2025-03-09.pdf", nil)

		path, err := service.Run(context.Background())
		require.NoError(t, err)

		assert.Equal(t, outputDir, filepath.Dir(path))
		assert.Regexp(t, regexp.MustCompile(`^tendencias_2025-03-03_a_2025-03-09_[2-9A-HJ-NP-Z]{8}\.pdf$`), filepath.Base(path))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.3 fake", string(content))

		assert.Equal(t, float64(1), counter(t, reg, "cron_job_success_total"))
		assert.Equal(t, float64(0), counter(t, reg, "cron_job_failure_total"))

		status := service.GetStatus()
		assert.Equal(t, path, status["last_file"])
		assert.Equal(t, false, status["running"])
		assert.Equal(t, "", status["last_error"])
	})

	t.Run("export failure is recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reporter := mocks.NewMockReporter(ctrl)
		service, reg := newWeeklyReportFixture(t, reporter, t.TempDir())

		reporter.EXPECT().
			ExportPDF(gomock.Any(), expectedRange, true).
			Return(nil, "", errors.New("db down"))

		_, err := service.Run(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db down")

		assert.Equal(t, float64(1), counter(t, reg, "cron_job_failure_total"))
		assert.Contains(t, service.GetStatus()["last_error"], "db down")
	})

	t.Run("overlapping run is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newWeeklyReportFixture(t, mocks.NewMockReporter(ctrl), t.TempDir())
		service.running = true

		_, err := service.Run(context.Background())
		assert.ErrorIs(t, err, ErrJobRunning)
		assert.False(t, service.TriggerManualRun())
	})
}

func TestWeeklyReportService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newWeeklyReportFixture(t, mocks.NewMockReporter(ctrl), t.TempDir())
	service.config.Enabled = false

	require.NoError(t, service.Start(context.Background()))
	assert.False(t, service.scheduler.IsRunning())
}
