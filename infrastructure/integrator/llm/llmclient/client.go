package llmclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/furniture-manager-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxErrorBody = 300

// Client gera texto a partir de uma conversa
type Client interface {
	Generate(ctx context.Context, messages []domain.ChatMessage, temperature float64) (string, error)
	Name() string
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// postJSON envia o corpo e decodifica a resposta em out. Qualquer falha vira ProviderError.
func postJSON(ctx context.Context, client *http.Client, provider, url string, headers map[string]string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &domain.ProviderError{Provider: provider, Message: "falha ao serializar requisição", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return &domain.ProviderError{Provider: provider, Message: "falha ao criar requisição", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return &domain.ProviderError{Provider: provider, Message: "falha ao chamar provedor", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.ProviderError{Provider: provider, StatusCode: resp.StatusCode, Message: "falha ao ler resposta", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &domain.ProviderError{Provider: provider, StatusCode: resp.StatusCode, Message: truncate(string(raw), maxErrorBody)}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &domain.ProviderError{Provider: provider, StatusCode: resp.StatusCode, Message: "resposta malformada", Err: err}
	}

	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
