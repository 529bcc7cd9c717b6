package generative

import (
	"context"
	"strings"
)

// MockGenerator answers locally without calling any API.
type MockGenerator struct {
	model string
}

func NewMockGenerator(model string) *MockGenerator {
	return &MockGenerator{model: model}
}

// Generate echoes the customer query found in the prompt.
func (g *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", classify(ctx, err)
	}
	query := prompt
	if i := strings.LastIndex(prompt, "CUSTOMER QUERY:"); i >= 0 {
		query = prompt[i+len("CUSTOMER QUERY:"):]
		if j := strings.Index(query, "\n"); j >= 0 {
			query = query[:j]
		}
	}
	return "Thanks for asking about \"" + strings.TrimSpace(query) + "\". Our team at Silk Touch is happy to help you find the right outfit.", nil
}

func (g *MockGenerator) Model() string {
	return g.model + "-mock"
}

var _ Generator = (*MockGenerator)(nil)
