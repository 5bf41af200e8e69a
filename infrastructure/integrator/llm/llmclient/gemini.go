package llmclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vfg2006/furniture-manager-api/internal/domain"
)

type geminiRequest struct {
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	Contents          []geminiContent        `json:"contents"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature float64 `json:"temperature"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type GeminiClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewGemini(apiKey, baseURL, model string, timeout time.Duration) *GeminiClient {
	return &GeminiClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  newHTTPClient(timeout),
	}
}

func (g *GeminiClient) Name() string {
	return "gemini"
}

func (g *GeminiClient) Generate(ctx context.Context, messages []domain.ChatMessage, temperature float64) (string, error) {
	if g.apiKey == "" {
		return "", &domain.ProviderError{Provider: g.Name(), Err: domain.ErrProviderNotConfigured}
	}

	endpoint := fmt.Sprintf("%s/%s:generateContent?key=%s", g.baseURL, g.model, url.QueryEscape(g.apiKey))

	var resp geminiResponse
	if err := postJSON(ctx, g.client, g.Name(), endpoint, nil, toGeminiRequest(messages, temperature), &resp); err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &domain.ProviderError{Provider: g.Name(), Err: domain.ErrProviderEmptyAnswer}
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}

	return strings.TrimSpace(sb.String()), nil
}

// toGeminiRequest junta as mensagens de sistema em systemInstruction e troca assistant por model
func toGeminiRequest(messages []domain.ChatMessage, temperature float64) geminiRequest {
	req := geminiRequest{GenerationConfig: geminiGenerationConfig{Temperature: temperature}}

	var system []geminiPart
	for _, m := range messages {
		switch m.Role {
		case domain.RoleSystem:
			system = append(system, geminiPart{Text: m.Content})
		case domain.RoleAssistant:
			req.Contents = append(req.Contents, geminiContent{Role: "model", Parts: []geminiPart{{Text: m.Content}}})
		default:
			req.Contents = append(req.Contents, geminiContent{Role: "user", Parts: []geminiPart{{Text: m.Content}}})
		}
	}

	if len(system) > 0 {
		req.SystemInstruction = &geminiContent{Parts: system}
	}

	return req
}
