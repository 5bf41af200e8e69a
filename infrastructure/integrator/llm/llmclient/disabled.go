package llmclient

import (
	"context"

	"github.com/vfg2006/furniture-manager-api/internal/domain"
)

// DisabledClient responde sempre com erro; usado quando o provedor configurado é desconhecido
type DisabledClient struct {
	provider string
}

func NewDisabled(provider string) *DisabledClient {
	return &DisabledClient{provider: provider}
}

func (d *DisabledClient) Name() string {
	if d.provider == "" {
		return "none"
	}
	return d.provider
}

func (d *DisabledClient) Generate(_ context.Context, _ []domain.ChatMessage, _ float64) (string, error) {
	return "", &domain.ProviderError{Provider: d.Name(), Err: domain.ErrProviderUnsupported}
}
