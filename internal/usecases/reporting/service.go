package reporting

import (
	"context"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/furniture-manager-api/infrastructure/integrator/llm"
	"github.com/vfg2006/furniture-manager-api/internal/config"
	"github.com/vfg2006/furniture-manager-api/internal/domain"
	"github.com/vfg2006/furniture-manager-api/internal/usecases/analyzing"
	"github.com/vfg2006/furniture-manager-api/pkg/log"
	"github.com/vfg2006/furniture-manager-api/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	MaxChatHistory     = 12
	DefaultTemperature = 0.2
	MaxTemperature     = 2.0
)

type Reporter interface {
	Summary(ctx context.Context, r domain.DateRange) (*domain.SummaryReport, error)
	Compare(ctx context.Context, r domain.DateRange) (*domain.ComparisonReport, error)
	Ask(ctx context.Context, question string, r domain.DateRange) (*domain.Answer, error)
	Chat(ctx context.Context, req domain.ChatRequest) (string, error)
	TrendsDocument(ctx context.Context, r domain.DateRange, includeCompare bool) (*domain.TrendsDocument, error)
	ExportPDF(ctx context.Context, r domain.DateRange, includeCompare bool) ([]byte, string, error)
}

type DocumentRenderer interface {
	RenderTrends(doc *domain.TrendsDocument) ([]byte, error)
}

type Service struct {
	analyzer    analyzing.Analyzer
	provider    llm.Provider
	renderer    DocumentRenderer
	metrics     *metrics.LLMMetrics
	temperature float64
	timeout     time.Duration
	storeName   string
}

func NewService(
	cfg *config.Config,
	analyzer analyzing.Analyzer,
	provider llm.Provider,
	renderer DocumentRenderer,
	m *metrics.LLMMetrics,
) Reporter {
	temperature := DefaultTemperature
	if t := cfg.LLM.Temperature; t != nil && *t >= 0 && *t <= MaxTemperature {
		temperature = *t
	}

	return &Service{
		analyzer:    analyzer,
		provider:    provider,
		renderer:    renderer,
		metrics:     m,
		temperature: temperature,
		timeout:     cfg.LLM.Timeout,
		storeName:   cfg.Analytics.StoreName,
	}
}

func (s *Service) Summary(ctx context.Context, r domain.DateRange) (*domain.SummaryReport, error) {
	m, err := s.analyzer.Metrics(ctx, r)
	if err != nil {
		return nil, err
	}

	return &domain.SummaryReport{
		Metrics:  m,
		AIReport: s.trendsReport(ctx, m),
	}, nil
}

func (s *Service) Compare(ctx context.Context, r domain.DateRange) (*domain.ComparisonReport, error) {
	comparison, err := s.analyzer.Compare(ctx, r)
	if err != nil {
		return nil, err
	}

	return &domain.ComparisonReport{
		Comparison:      *comparison,
		AICompareReport: s.compareReport(ctx, comparison),
	}, nil
}

// Ask responde sempre: qualquer falha do provedor ou resposta inutilizável cai no fallback
func (s *Service) Ask(ctx context.Context, question string, r domain.DateRange) (*domain.Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}

	m, err := s.analyzer.Metrics(ctx, r)
	if err != nil {
		return nil, err
	}

	answer, charts, err := s.answer(ctx, m, question)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("reporting: IA no disponible, usando respuesta básica")
		s.metrics.IncFallback("ask")

		return &domain.Answer{
			Answer:  FallbackAnswer(m, question),
			Charts:  DefaultCharts(m),
			Metrics: m,
		}, nil
	}

	if len(charts) == 0 {
		charts = DefaultCharts(m)
	}

	return &domain.Answer{
		Answer:  answer,
		Charts:  charts,
		Metrics: m,
	}, nil
}

func (s *Service) answer(ctx context.Context, m *domain.Metrics, question string) (string, []domain.ChartDescriptor, error) {
	messages, err := AskMessages(m, question)
	if err != nil {
		return "", nil, err
	}

	raw, err := s.generate(ctx, messages, s.temperature)
	if err != nil {
		return "", nil, err
	}

	answer, charts := Repair(raw)
	if answer == "" && len(charts) == 0 {
		return "", nil, ErrEmptyNarrative
	}

	return answer, charts, nil
}

// Chat repassa a conversa ao provedor. Erros do provedor não têm fallback e são devolvidos.
func (s *Service) Chat(ctx context.Context, req domain.ChatRequest) (string, error) {
	if len(req.Messages) == 0 {
		return "", ErrEmptyConversation
	}
	if req.Temperature < 0 || req.Temperature > MaxTemperature {
		return "", ErrInvalidTemperature
	}

	mode := req.Mode
	if mode == "" {
		mode = domain.ChatModeGeneral
	}
	if mode != domain.ChatModeGeneral && mode != domain.ChatModeAnalytics {
		return "", ErrInvalidChatMode
	}

	history := tail(req.Messages, MaxChatHistory)
	messages := make([]domain.ChatMessage, 0, len(history)+1)

	if mode == domain.ChatModeAnalytics {
		m, err := s.analyzer.Metrics(ctx, req.Range)
		if err != nil {
			return "", err
		}
		messages = append(messages, KPIContextMessage(m))
	}
	messages = append(messages, history...)

	return s.generate(ctx, messages, req.Temperature)
}

// TrendsDocument reúne métricas, comparação e narrativas usadas no PDF
func (s *Service) TrendsDocument(ctx context.Context, r domain.DateRange, includeCompare bool) (*domain.TrendsDocument, error) {
	doc := &domain.TrendsDocument{StoreName: s.storeName}

	if includeCompare {
		comparison, err := s.analyzer.Compare(ctx, r)
		if err != nil {
			return nil, err
		}
		doc.Current = comparison.Current
		doc.Comparison = comparison
		doc.AICompareReport = s.compareReport(ctx, comparison)
	} else {
		m, err := s.analyzer.Metrics(ctx, r)
		if err != nil {
			return nil, err
		}
		doc.Current = m
	}

	doc.AIReport = s.trendsReport(ctx, doc.Current)

	return doc, nil
}

func (s *Service) ExportPDF(ctx context.Context, r domain.DateRange, includeCompare bool) ([]byte, string, error) {
	doc, err := s.TrendsDocument(ctx, r, includeCompare)
	if err != nil {
		return nil, "", err
	}

	content, err := s.renderer.RenderTrends(doc)
	if err != nil {
		return nil, "", err
	}

	return content, doc.Filename(), nil
}

func (s *Service) trendsReport(ctx context.Context, m *domain.Metrics) string {
	report, err := s.narrate(ctx, func() ([]domain.ChatMessage, error) { return TrendsMessages(m) })
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("reporting: IA no disponible, usando informe básico")
		s.metrics.IncFallback("summary")
		return FallbackTrendsReport(m)
	}
	return report
}

func (s *Service) compareReport(ctx context.Context, c *domain.Comparison) string {
	report, err := s.narrate(ctx, func() ([]domain.ChatMessage, error) { return CompareMessages(c) })
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("reporting: IA comparativa no disponible")
		s.metrics.IncFallback("compare")
		return ""
	}
	return report
}

func (s *Service) narrate(ctx context.Context, build func() ([]domain.ChatMessage, error)) (string, error) {
	messages, err := build()
	if err != nil {
		return "", err
	}

	report, err := s.generate(ctx, messages, s.temperature)
	if err != nil {
		return "", err
	}

	report = strings.TrimSpace(report)
	if report == "" {
		return "", ErrEmptyNarrative
	}

	return report, nil
}

func (s *Service) generate(ctx context.Context, messages []domain.ChatMessage, temperature float64) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	return s.provider.Generate(ctx, messages, temperature)
}
