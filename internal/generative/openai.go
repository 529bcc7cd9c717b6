package generative

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

const openAIBaseURL = "https://api.openai.com"

type OpenAIGenerator struct {
	apiKey  string
	model   string
	baseURL string
	opts    Options
	client  *http.Client
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
	TopP        float64         `json:"top_p"`
	MaxTokens   int             `json:"max_tokens"`
}

type openAIResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
}

func NewOpenAIGenerator(model, apiKeyEnv, directAPIKey, baseURL string, client *http.Client) (*OpenAIGenerator, error) {
	apiKey, err := resolveAPIKey(directAPIKey, apiKeyEnv)
	if err != nil {
		return nil, err
	}
	if baseURL == "" {
		baseURL = openAIBaseURL
	}
	return &OpenAIGenerator{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		opts:    DefaultOptions,
		client:  client,
	}, nil
}

func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	req := openAIRequest{
		Model:       g.model,
		Messages:    []openAIMessage{{Role: "user", Content: prompt}},
		Temperature: g.opts.Temperature,
		TopP:        g.opts.TopP,
		MaxTokens:   g.opts.MaxOutputTokens,
	}

	var resp openAIResponse
	headers := map[string]string{"Authorization": "Bearer " + g.apiKey}
	if err := postJSON(ctx, g.client, g.baseURL+"/v1/chat/completions", headers, req, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: no choices in response", ErrUnavailable)
	}
	return resp.Choices[0].Message.Content, nil
}

func (g *OpenAIGenerator) Model() string {
	return g.model
}

var _ Generator = (*OpenAIGenerator)(nil)
