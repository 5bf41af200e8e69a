package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// LLMMetrics registra chamadas aos provedores de linguagem e os fallbacks acionados
type LLMMetrics struct {
	requests  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	fallbacks *prometheus.CounterVec
}

func NewLLMMetrics(reg prometheus.Registerer) *LLMMetrics {
	if reg == nil {
		return &LLMMetrics{}
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "llm_requests_total",
		Help: "LLM provider calls by outcome.",
	}, []string{"provider", "outcome"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "llm_request_duration_seconds",
		Help:    "Duration of LLM provider calls in seconds.",
		Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
	}, []string{"provider"})
	fallbacks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "llm_fallbacks_total",
		Help: "Deterministic fallbacks used instead of a provider answer.",
	}, []string{"endpoint"})
	reg.MustRegister(requests, duration, fallbacks)
	return &LLMMetrics{
		requests:  requests,
		duration:  duration,
		fallbacks: fallbacks,
	}
}

func (m *LLMMetrics) ObserveRequest(provider, outcome string, d time.Duration) {
	if m == nil || m.requests == nil {
		return
	}
	provider = normalizeLabel(provider)
	m.requests.WithLabelValues(provider, outcome).Inc()
	m.duration.WithLabelValues(provider).Observe(d.Seconds())
}

func (m *LLMMetrics) IncFallback(endpoint string) {
	if m == nil || m.fallbacks == nil {
		return
	}
	m.fallbacks.WithLabelValues(normalizeLabel(endpoint)).Inc()
}
