package llm

import (
	"context"
	"strings"
	"time"

	"github.com/vfg2006/furniture-manager-api/infrastructure/integrator/llm/llmclient"
	"github.com/vfg2006/furniture-manager-api/internal/config"
	"github.com/vfg2006/furniture-manager-api/internal/domain"
	"github.com/vfg2006/furniture-manager-api/pkg/log"
	"github.com/vfg2006/furniture-manager-api/pkg/metrics"
)

type Provider interface {
	Generate(ctx context.Context, messages []domain.ChatMessage, temperature float64) (string, error)
	Name() string
}

type LLMIntegrator struct {
	Client  llmclient.Client
	metrics *metrics.LLMMetrics
}

func New(cfg *config.Config, m *metrics.LLMMetrics) *LLMIntegrator {
	return &LLMIntegrator{
		Client:  NewClient(cfg.LLM),
		metrics: m,
	}
}

// NewClient escolhe o cliente pelo nome do provedor
func NewClient(cfg config.LLM) llmclient.Client {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "groq":
		return llmclient.NewGroq(cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.GroqModel, cfg.Timeout)
	case "github":
		return llmclient.NewGitHub(cfg.GitHubToken, cfg.GitHubBaseURL, cfg.GitHubModel, cfg.Timeout)
	case "openai":
		return llmclient.NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, cfg.Timeout)
	case "gemini":
		return llmclient.NewGemini(cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.GeminiModel, cfg.Timeout)
	default:
		return llmclient.NewDisabled(cfg.Provider)
	}
}

func (s *LLMIntegrator) Name() string {
	return s.Client.Name()
}

func (s *LLMIntegrator) Generate(ctx context.Context, messages []domain.ChatMessage, temperature float64) (string, error) {
	start := time.Now()
	answer, err := s.Client.Generate(ctx, messages, temperature)
	elapsed := time.Since(start)

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"provider":    s.Client.Name(),
		"messages":    len(messages),
		"duration_ms": elapsed.Milliseconds(),
	})

	if err != nil {
		s.metrics.ObserveRequest(s.Client.Name(), metrics.OutcomeFailure, elapsed)
		logger.WithError(err).Warn("llm: provider call failed")
		return "", err
	}

	s.metrics.ObserveRequest(s.Client.Name(), metrics.OutcomeSuccess, elapsed)
	logger.Debug("llm: provider call succeeded")

	return answer, nil
}
