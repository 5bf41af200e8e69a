package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/furniture-manager-api/infrastructure/integrator/llm/llmclient"
	"github.com/vfg2006/furniture-manager-api/infrastructure/integrator/llm/mocks"
	"github.com/vfg2006/furniture-manager-api/internal/config"
	"github.com/vfg2006/furniture-manager-api/internal/domain"
	"github.com/vfg2006/furniture-manager-api/pkg/metrics"
	"go.uber.org/mock/gomock"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		provider string
		wantName string
		wantType any
	}{
		{"groq", "groq", &llmclient.ChatCompletionsClient{}},
		{"GitHub", "github", &llmclient.ChatCompletionsClient{}},
		{" openai ", "openai", &llmclient.ChatCompletionsClient{}},
		{"gemini", "gemini", &llmclient.GeminiClient{}},
		{"ollama", "ollama", &llmclient.DisabledClient{}},
		{"", "none", &llmclient.DisabledClient{}},
	}

	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			client := NewClient(config.LLM{Provider: tt.provider})

			assert.IsType(t, tt.wantType, client)
			assert.Equal(t, tt.wantName, client.Name())
		})
	}
}

func TestLLMIntegrator_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockProvider(ctrl)
	integrator := &LLMIntegrator{
		Client:  client,
		metrics: metrics.NewLLMMetrics(prometheus.NewRegistry()),
	}
	messages := []domain.ChatMessage{{Role: domain.RoleUser, Content: "hola"}}

	client.EXPECT().Name().Return("groq").AnyTimes()

	t.Run("sucesso", func(t *testing.T) {
		client.EXPECT().Generate(gomock.Any(), messages, 0.2).Return("respuesta", nil)

		answer, err := integrator.Generate(context.Background(), messages, 0.2)

		require.NoError(t, err)
		assert.Equal(t, "respuesta", answer)
	})

	t.Run("erro do provedor", func(t *testing.T) {
		providerErr := &domain.ProviderError{Provider: "groq", StatusCode: 500, Message: "boom"}
		client.EXPECT().Generate(gomock.Any(), messages, 0.2).Return("", providerErr)

		answer, err := integrator.Generate(context.Background(), messages, 0.2)

		assert.Empty(t, answer)
		assert.True(t, errors.Is(err, providerErr))
	})
}
