package generative

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"silktouch/internal/config"
)

// New creates a generator based on configuration. Provider "none" yields a nil
// Generator and no error, which callers treat as fallback-only mode.
func New(cfg config.GenerativeConfig) (Generator, error) {
	client := &http.Client{Timeout: 60 * time.Second}
	switch cfg.Provider {
	case "", "none":
		return nil, nil
	case "gemini":
		return NewGeminiGenerator(cfg.Model, cfg.APIKeyEnv, cfg.APIKey, cfg.BaseURL, client)
	case "openai":
		return NewOpenAIGenerator(cfg.Model, cfg.APIKeyEnv, cfg.APIKey, cfg.BaseURL, client)
	case "anthropic":
		return NewAnthropicGenerator(cfg.Model, cfg.APIKeyEnv, cfg.APIKey, cfg.BaseURL, client)
	case "mock":
		return NewMockGenerator(cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported generator provider: %s", cfg.Provider)
	}
}

// Status describes the delegate for diagnostics.
type Status struct {
	Provider      string     `json:"provider"`
	Model         string     `json:"model,omitempty"`
	Available     bool       `json:"available"`
	APIKeyPresent bool       `json:"apiKeyPresent"`
	InitError     string     `json:"initError,omitempty"`
	LastError     string     `json:"lastError,omitempty"`
	LastSuccessAt *time.Time `json:"lastSuccessAt,omitempty"`
	LastFailureAt *time.Time `json:"lastFailureAt,omitempty"`
}

// Tracked wraps a Generator and remembers the outcome of recent calls.
// With no generator set every call fails fast with ErrUnavailable.
type Tracked struct {
	inner Generator

	mu     sync.Mutex
	status Status
}

// NewTracked builds the configured generator and records whether that worked.
// The returned Tracked is usable even when construction failed.
func NewTracked(cfg config.GenerativeConfig) *Tracked {
	t := &Tracked{status: Status{
		Provider:      cfg.Provider,
		APIKeyPresent: cfg.APIKey != "" || (cfg.APIKeyEnv != "" && os.Getenv(cfg.APIKeyEnv) != ""),
	}}
	gen, err := New(cfg)
	if err != nil {
		t.status.InitError = err.Error()
		return t
	}
	t.Set(gen)
	return t
}

// Set swaps the wrapped generator. A nil generator switches to fallback-only mode.
func (t *Tracked) Set(gen Generator) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.inner = gen
	t.status.Available = gen != nil
	t.status.Model = ""
	if gen != nil {
		t.status.Model = gen.Model()
	}
}

func (t *Tracked) Generate(ctx context.Context, prompt string) (string, error) {
	t.mu.Lock()
	inner := t.inner
	t.mu.Unlock()
	if inner == nil {
		return "", ErrUnavailable
	}

	text, err := inner.Generate(ctx, prompt)
	now := time.Now()

	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		t.status.LastError = err.Error()
		t.status.LastFailureAt = &now
	} else {
		t.status.LastError = ""
		t.status.LastSuccessAt = &now
	}
	return text, err
}

func (t *Tracked) Model() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status.Model
}

// Status returns a snapshot of the delegate's state.
func (t *Tracked) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}
