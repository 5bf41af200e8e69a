package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			if matchLabels(metric, labels) {
				return metric.GetCounter().GetValue()
			}
		}
	}

	return 0
}

func matchLabels(metric *dto.Metric, labels map[string]string) bool {
	found := 0
	for _, pair := range metric.GetLabel() {
		if v, ok := labels[pair.GetName()]; ok && v == pair.GetValue() {
			found++
		}
	}
	return found == len(labels)
}

func TestLLMMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewLLMMetrics(reg)

	m.ObserveRequest("groq", OutcomeSuccess, 120*time.Millisecond)
	m.ObserveRequest("groq", OutcomeFailure, time.Second)
	m.ObserveRequest("groq", OutcomeFailure, time.Second)
	m.IncFallback("ask")
	m.IncFallback("")

	assert.Equal(t, 1.0, counterValue(t, reg, "llm_requests_total", map[string]string{"provider": "groq", "outcome": "success"}))
	assert.Equal(t, 2.0, counterValue(t, reg, "llm_requests_total", map[string]string{"provider": "groq", "outcome": "failure"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "llm_fallbacks_total", map[string]string{"endpoint": "ask"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "llm_fallbacks_total", map[string]string{"endpoint": "unknown"}))
}

func TestCronJobMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCronJobMetrics(reg)

	m.IncSuccess("weekly-report")
	m.IncFailure("weekly-report")
	m.ObserveDuration("weekly-report", 2*time.Second)

	assert.Equal(t, 1.0, counterValue(t, reg, "cron_job_success_total", map[string]string{"job": "weekly-report"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "cron_job_failure_total", map[string]string{"job": "weekly-report"}))
}

func TestNilRegistererIsNoop(t *testing.T) {
	var nilMetrics *LLMMetrics

	assert.NotPanics(t, func() {
		NewLLMMetrics(nil).IncFallback("ask")
		NewCronJobMetrics(nil).IncSuccess("job")
		nilMetrics.ObserveRequest("groq", OutcomeSuccess, time.Second)
	})
}
