package llmclient

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/vfg2006/furniture-manager-api/internal/domain"
)

type chatCompletionRequest struct {
	Model       string               `json:"model"`
	Temperature float64              `json:"temperature"`
	Messages    []domain.ChatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ChatCompletionsClient fala o formato /chat/completions compartilhado por Groq, GitHub Models e OpenAI
type ChatCompletionsClient struct {
	name    string
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewGroq(apiKey, baseURL, model string, timeout time.Duration) *ChatCompletionsClient {
	return newChatCompletions("groq", apiKey, baseURL, model, timeout)
}

func NewGitHub(token, baseURL, model string, timeout time.Duration) *ChatCompletionsClient {
	return newChatCompletions("github", token, baseURL, model, timeout)
}

func NewOpenAI(apiKey, baseURL, model string, timeout time.Duration) *ChatCompletionsClient {
	return newChatCompletions("openai", apiKey, baseURL, model, timeout)
}

func newChatCompletions(name, apiKey, baseURL, model string, timeout time.Duration) *ChatCompletionsClient {
	return &ChatCompletionsClient{
		name:    name,
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  newHTTPClient(timeout),
	}
}

func (c *ChatCompletionsClient) Name() string {
	return c.name
}

func (c *ChatCompletionsClient) Generate(ctx context.Context, messages []domain.ChatMessage, temperature float64) (string, error) {
	if c.apiKey == "" {
		return "", &domain.ProviderError{Provider: c.name, Err: domain.ErrProviderNotConfigured}
	}

	body := chatCompletionRequest{
		Model:       c.model,
		Temperature: temperature,
		Messages:    messages,
	}
	headers := map[string]string{"Authorization": "Bearer " + c.apiKey}

	var resp chatCompletionResponse
	if err := postJSON(ctx, c.client, c.name, c.baseURL+"/chat/completions", headers, body, &resp); err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", &domain.ProviderError{Provider: c.name, Err: domain.ErrProviderEmptyAnswer}
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
