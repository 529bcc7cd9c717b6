package generative

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

const anthropicBaseURL = "https://api.anthropic.com"

type AnthropicGenerator struct {
	apiKey  string
	model   string
	baseURL string
	opts    Options
	client  *http.Client
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Messages    []anthropicMessage `json:"messages"`
	Temperature float64            `json:"temperature"`
	TopK        int                `json:"top_k"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
}

func NewAnthropicGenerator(model, apiKeyEnv, directAPIKey, baseURL string, client *http.Client) (*AnthropicGenerator, error) {
	apiKey, err := resolveAPIKey(directAPIKey, apiKeyEnv)
	if err != nil {
		return nil, err
	}
	if baseURL == "" {
		baseURL = anthropicBaseURL
	}
	return &AnthropicGenerator{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		opts:    DefaultOptions,
		client:  client,
	}, nil
}

func (g *AnthropicGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	req := anthropicRequest{
		Model:       g.model,
		MaxTokens:   g.opts.MaxOutputTokens,
		Messages:    []anthropicMessage{{Role: "user", Content: prompt}},
		Temperature: g.opts.Temperature,
		TopK:        g.opts.TopK,
	}

	headers := map[string]string{
		"x-api-key":         g.apiKey,
		"anthropic-version": "2023-06-01",
	}
	var resp anthropicResponse
	if err := postJSON(ctx, g.client, g.baseURL+"/v1/messages", headers, req, &resp); err != nil {
		return "", err
	}
	for _, block := range resp.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("%w: no content in response", ErrUnavailable)
}

func (g *AnthropicGenerator) Model() string {
	return g.model
}

var _ Generator = (*AnthropicGenerator)(nil)
