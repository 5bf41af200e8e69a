package reporting

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	llmmocks "github.com/vfg2006/furniture-manager-api/infrastructure/integrator/llm/mocks"
	"github.com/vfg2006/furniture-manager-api/internal/config"
	"github.com/vfg2006/furniture-manager-api/internal/domain"
	analyzingmocks "github.com/vfg2006/furniture-manager-api/internal/usecases/analyzing/mocks"
	"github.com/vfg2006/furniture-manager-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

type serviceFixture struct {
	service  Reporter
	analyzer *analyzingmocks.MockAnalyzer
	provider *llmmocks.MockProvider
	renderer *mocks.MockDocumentRenderer
}

func newServiceFixture(t *testing.T) serviceFixture {
	ctrl := gomock.NewController(t)
	f := serviceFixture{
		analyzer: analyzingmocks.NewMockAnalyzer(ctrl),
		provider: llmmocks.NewMockProvider(ctrl),
		renderer: mocks.NewMockDocumentRenderer(ctrl),
	}

	cfg := &config.Config{
		LLM:       config.LLM{Temperature: floatPtr(0.2), Timeout: time.Second},
		Analytics: config.Analytics{StoreName: "Muebles Demo"},
	}
	f.service = NewService(cfg, f.analyzer, f.provider, f.renderer, nil)

	return f
}

func floatPtr(v float64) *float64 { return &v }

func TestNewService_Temperature(t *testing.T) {
	tests := []struct {
		name       string
		configured *float64
		want       float64
	}{
		{name: "não configurada usa o padrão", configured: nil, want: DefaultTemperature},
		{name: "zero é aceito", configured: floatPtr(0), want: 0},
		{name: "valor no intervalo", configured: floatPtr(1.3), want: 1.3},
		{name: "acima do máximo usa o padrão", configured: floatPtr(2.5), want: DefaultTemperature},
		{name: "negativa usa o padrão", configured: floatPtr(-1), want: DefaultTemperature},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{LLM: config.LLM{Temperature: tt.configured}}

			service := NewService(cfg, nil, nil, nil, nil).(*Service)

			assert.Equal(t, tt.want, service.temperature)
		})
	}
}

func testRange() domain.DateRange {
	r, _ := domain.NewDateRange(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC))
	return r
}

func testComparison() *domain.Comparison {
	current := sampleMetrics()
	current.Range = testRange()
	previous := &domain.Metrics{Range: testRange().Previous()}
	return &domain.Comparison{Current: current, Previous: previous}
}

var providerFailure = &domain.ProviderError{Provider: "groq", StatusCode: 503, Message: "unavailable"}

func TestService_Summary(t *testing.T) {
	t.Run("usa o informe do provedor", func(t *testing.T) {
		f := newServiceFixture(t)
		m := sampleMetrics()

		f.analyzer.EXPECT().Metrics(gomock.Any(), testRange()).Return(m, nil)
		f.provider.EXPECT().Generate(gomock.Any(), gomock.Any(), 0.2).
			DoAndReturn(func(_ context.Context, messages []domain.ChatMessage, _ float64) (string, error) {
				require.Len(t, messages, 2)
				assert.Equal(t, domain.RoleSystem, messages[0].Role)
				assert.Contains(t, messages[1].Content, "MÉTRICAS JSON:")
				return "  Informe completo  ", nil
			})

		got, err := f.service.Summary(context.Background(), testRange())

		require.NoError(t, err)
		assert.Equal(t, "Informe completo", got.AIReport)
		assert.Same(t, m, got.Metrics)
	})

	t.Run("falha do provedor usa o informe básico", func(t *testing.T) {
		f := newServiceFixture(t)
		m := sampleMetrics()

		f.analyzer.EXPECT().Metrics(gomock.Any(), testRange()).Return(m, nil)
		f.provider.EXPECT().Generate(gomock.Any(), gomock.Any(), 0.2).Return("", providerFailure)

		got, err := f.service.Summary(context.Background(), testRange())

		require.NoError(t, err)
		assert.Equal(t, FallbackTrendsReport(m), got.AIReport)
	})

	t.Run("erro do banco é propagado", func(t *testing.T) {
		f := newServiceFixture(t)
		dbErr := errors.New("connection refused")

		f.analyzer.EXPECT().Metrics(gomock.Any(), testRange()).Return(nil, dbErr)

		got, err := f.service.Summary(context.Background(), testRange())

		assert.Nil(t, got)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestService_Compare(t *testing.T) {
	t.Run("inclui a narrativa comparativa", func(t *testing.T) {
		f := newServiceFixture(t)
		c := testComparison()

		f.analyzer.EXPECT().Compare(gomock.Any(), testRange()).Return(c, nil)
		f.provider.EXPECT().Generate(gomock.Any(), gomock.Any(), 0.2).
			DoAndReturn(func(_ context.Context, messages []domain.ChatMessage, _ float64) (string, error) {
				assert.True(t, strings.HasPrefix(messages[1].Content, compareInstruction))
				assert.Contains(t, messages[1].Content, `"previous_range":{"from":"2024-12-01","to":"2024-12-31"}`)
				return "Suben las ventas.", nil
			})

		got, err := f.service.Compare(context.Background(), testRange())

		require.NoError(t, err)
		assert.Equal(t, "Suben las ventas.", got.AICompareReport)
		assert.Same(t, c.Current, got.Current)
	})

	t.Run("falha do provedor deixa a narrativa vazia", func(t *testing.T) {
		f := newServiceFixture(t)

		f.analyzer.EXPECT().Compare(gomock.Any(), testRange()).Return(testComparison(), nil)
		f.provider.EXPECT().Generate(gomock.Any(), gomock.Any(), 0.2).Return("", providerFailure)

		got, err := f.service.Compare(context.Background(), testRange())

		require.NoError(t, err)
		assert.Empty(t, got.AICompareReport)
	})
}

func TestService_Ask(t *testing.T) {
	question := "¿Qué producto vende más?"

	t.Run("extrai gráficos da resposta", func(t *testing.T) {
		f := newServiceFixture(t)
		m := sampleMetrics()
		m.Range = testRange()

		f.analyzer.EXPECT().Metrics(gomock.Any(), testRange()).Return(m, nil)
		f.provider.EXPECT().Generate(gomock.Any(), gomock.Any(), 0.2).
			DoAndReturn(func(_ context.Context, messages []domain.ChatMessage, _ float64) (string, error) {
				assert.Equal(t, askSystemPrompt, messages[0].Content)
				assert.True(t, strings.HasPrefix(messages[1].Content, "Rango: 2025-01-01 → 2025-01-31\nPregunta: "+question+"\n\nDATOS:\n"))
				return `El Sofá lidera. {"charts":[{"type":"bar","title":"Top","xKey":"name","yKey":"revenue","data":[]}]}`, nil
			})

		got, err := f.service.Ask(context.Background(), question, testRange())

		require.NoError(t, err)
		assert.Equal(t, "El Sofá lidera.", got.Answer)
		require.Len(t, got.Charts, 1)
		assert.Equal(t, "Top", got.Charts[0].Title)
		assert.Same(t, m, got.Metrics)
	})

	t.Run("sem gráficos na resposta usa os gráficos padrão", func(t *testing.T) {
		f := newServiceFixture(t)
		m := sampleMetrics()

		f.analyzer.EXPECT().Metrics(gomock.Any(), testRange()).Return(m, nil)
		f.provider.EXPECT().Generate(gomock.Any(), gomock.Any(), 0.2).Return("El Sofá lidera.", nil)

		got, err := f.service.Ask(context.Background(), question, testRange())

		require.NoError(t, err)
		assert.Equal(t, "El Sofá lidera.", got.Answer)
		assert.Equal(t, DefaultCharts(m), got.Charts)
	})

	t.Run("falha do provedor usa a resposta básica", func(t *testing.T) {
		f := newServiceFixture(t)
		m := sampleMetrics()

		f.analyzer.EXPECT().Metrics(gomock.Any(), testRange()).Return(m, nil)
		f.provider.EXPECT().Generate(gomock.Any(), gomock.Any(), 0.2).Return("", providerFailure)

		got, err := f.service.Ask(context.Background(), question, testRange())

		require.NoError(t, err)
		assert.Equal(t, FallbackAnswer(m, question), got.Answer)
		assert.Equal(t, DefaultCharts(m), got.Charts)
	})

	t.Run("resposta vazia usa a resposta básica", func(t *testing.T) {
		f := newServiceFixture(t)
		m := sampleMetrics()

		f.analyzer.EXPECT().Metrics(gomock.Any(), testRange()).Return(m, nil)
		f.provider.EXPECT().Generate(gomock.Any(), gomock.Any(), 0.2).Return("  \n\n ", nil)

		got, err := f.service.Ask(context.Background(), question, testRange())

		require.NoError(t, err)
		assert.Equal(t, FallbackAnswer(m, question), got.Answer)
	})

	t.Run("pergunta vazia", func(t *testing.T) {
		f := newServiceFixture(t)

		got, err := f.service.Ask(context.Background(), "   ", testRange())

		assert.Nil(t, got)
		assert.ErrorIs(t, err, ErrEmptyQuestion)
	})
}

func TestService_Chat(t *testing.T) {
	t.Run("modo general repassa a conversa", func(t *testing.T) {
		f := newServiceFixture(t)
		messages := []domain.ChatMessage{{Role: domain.RoleUser, Content: "hola"}}

		f.provider.EXPECT().Generate(gomock.Any(), messages, 0.7).Return("¡Hola!", nil)

		got, err := f.service.Chat(context.Background(), domain.ChatRequest{Messages: messages, Temperature: 0.7})

		require.NoError(t, err)
		assert.Equal(t, "¡Hola!", got)
	})

	t.Run("histórico limitado às últimas mensagens", func(t *testing.T) {
		f := newServiceFixture(t)
		messages := make([]domain.ChatMessage, 20)
		for i := range messages {
			messages[i] = domain.ChatMessage{Role: domain.RoleUser, Content: fmt.Sprintf("m%d", i)}
		}

		f.provider.EXPECT().Generate(gomock.Any(), messages[8:], 0.2).Return("ok", nil)

		_, err := f.service.Chat(context.Background(), domain.ChatRequest{
			Messages:    messages,
			Mode:        domain.ChatModeGeneral,
			Temperature: 0.2,
		})

		require.NoError(t, err)
	})

	t.Run("modo analytics prefixa os KPIs", func(t *testing.T) {
		f := newServiceFixture(t)
		m := sampleMetrics()
		m.Range = testRange()
		messages := []domain.ChatMessage{{Role: domain.RoleUser, Content: "¿Cómo vamos?"}}

		f.analyzer.EXPECT().Metrics(gomock.Any(), testRange()).Return(m, nil)
		f.provider.EXPECT().Generate(gomock.Any(), gomock.Any(), 0.2).
			DoAndReturn(func(_ context.Context, got []domain.ChatMessage, _ float64) (string, error) {
				require.Len(t, got, 2)
				assert.Equal(t, domain.RoleSystem, got[0].Role)
				assert.Contains(t, got[0].Content, "- Ingresos: 1234.50 € en 3 pedidos.")
				assert.Contains(t, got[0].Content, "2025-01-01 → 2025-01-31")
				assert.Equal(t, messages[0], got[1])
				return "Bien.", nil
			})

		got, err := f.service.Chat(context.Background(), domain.ChatRequest{
			Messages:    messages,
			Mode:        domain.ChatModeAnalytics,
			Temperature: 0.2,
			Range:       testRange(),
		})

		require.NoError(t, err)
		assert.Equal(t, "Bien.", got)
	})

	t.Run("erro do provedor é propagado", func(t *testing.T) {
		f := newServiceFixture(t)

		f.provider.EXPECT().Generate(gomock.Any(), gomock.Any(), 0.2).Return("", providerFailure)

		_, err := f.service.Chat(context.Background(), domain.ChatRequest{
			Messages:    []domain.ChatMessage{{Role: domain.RoleUser, Content: "hola"}},
			Temperature: 0.2,
		})

		assert.True(t, domain.IsProviderError(err))
	})

	validation := []struct {
		name    string
		req     domain.ChatRequest
		wantErr error
	}{
		{"sem mensagens", domain.ChatRequest{Temperature: 0.2}, ErrEmptyConversation},
		{"temperatura alta", domain.ChatRequest{Messages: []domain.ChatMessage{{Role: "user", Content: "x"}}, Temperature: 2.5}, ErrInvalidTemperature},
		{"temperatura negativa", domain.ChatRequest{Messages: []domain.ChatMessage{{Role: "user", Content: "x"}}, Temperature: -1}, ErrInvalidTemperature},
		{"modo desconhecido", domain.ChatRequest{Messages: []domain.ChatMessage{{Role: "user", Content: "x"}}, Mode: "sql"}, ErrInvalidChatMode},
	}
	for _, tt := range validation {
		t.Run(tt.name, func(t *testing.T) {
			f := newServiceFixture(t)

			_, err := f.service.Chat(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestService_ExportPDF(t *testing.T) {
	t.Run("com comparação", func(t *testing.T) {
		f := newServiceFixture(t)
		c := testComparison()

		f.analyzer.EXPECT().Compare(gomock.Any(), testRange()).Return(c, nil)
		f.provider.EXPECT().Generate(gomock.Any(), gomock.Any(), 0.2).Return("Comparativa.", nil)
		f.provider.EXPECT().Generate(gomock.Any(), gomock.Any(), 0.2).Return("Informe.", nil)
		f.renderer.EXPECT().RenderTrends(gomock.Any()).
			DoAndReturn(func(doc *domain.TrendsDocument) ([]byte, error) {
				assert.Equal(t, "Muebles Demo", doc.StoreName)
				assert.Same(t, c.Current, doc.Current)
				assert.Same(t, c, doc.Comparison)
				assert.Equal(t, "Comparativa.", doc.AICompareReport)
				assert.Equal(t, "Informe.", doc.AIReport)
				return []byte("%PDF-1.3"), nil
			})

		content, filename, err := f.service.ExportPDF(context.Background(), testRange(), true)

		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF-1.3"), content)
		assert.Equal(t, "tendencias_2025-01-01_a_2025-01-31.pdf", filename)
	})

	t.Run("sem comparação", func(t *testing.T) {
		f := newServiceFixture(t)
		m := sampleMetrics()
		m.Range = testRange()

		f.analyzer.EXPECT().Metrics(gomock.Any(), testRange()).Return(m, nil)
		f.provider.EXPECT().Generate(gomock.Any(), gomock.Any(), 0.2).Return("", providerFailure)
		f.renderer.EXPECT().RenderTrends(gomock.Any()).
			DoAndReturn(func(doc *domain.TrendsDocument) ([]byte, error) {
				assert.Nil(t, doc.Comparison)
				assert.Equal(t, FallbackTrendsReport(m), doc.AIReport)
				return []byte("%PDF-1.3"), nil
			})

		_, filename, err := f.service.ExportPDF(context.Background(), testRange(), false)

		require.NoError(t, err)
		assert.Equal(t, "tendencias_2025-01-01_a_2025-01-31.pdf", filename)
	})

	t.Run("erro do renderizador", func(t *testing.T) {
		f := newServiceFixture(t)
		renderErr := errors.New("font missing")

		f.analyzer.EXPECT().Metrics(gomock.Any(), testRange()).Return(sampleMetrics(), nil)
		f.provider.EXPECT().Generate(gomock.Any(), gomock.Any(), 0.2).Return("Informe.", nil)
		f.renderer.EXPECT().RenderTrends(gomock.Any()).Return(nil, renderErr)

		_, _, err := f.service.ExportPDF(context.Background(), testRange(), false)

		assert.ErrorIs(t, err, renderErr)
	})
}
