// Package generative wraps third-party text generation APIs behind one small interface.
package generative

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
)

var (
	// ErrUnavailable covers any failure of the provider other than a timeout.
	ErrUnavailable = errors.New("generative model unavailable")
	// ErrTimeout is returned when the call exceeds its deadline.
	ErrTimeout = errors.New("generative model timed out")
)

// Generator produces a text completion for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Model() string
}

// Options are the sampling settings sent with every request.
type Options struct {
	Temperature     float64
	TopK            int
	TopP            float64
	MaxOutputTokens int
}

// DefaultOptions favour short, moderately creative answers.
var DefaultOptions = Options{
	Temperature:     0.7,
	TopK:            40,
	TopP:            0.95,
	MaxOutputTokens: 1024,
}

// resolveAPIKey prefers the key set directly in config and falls back to the named env var.
func resolveAPIKey(directAPIKey, apiKeyEnv string) (string, error) {
	if directAPIKey != "" {
		return directAPIKey, nil
	}
	if apiKeyEnv != "" {
		if key := os.Getenv(apiKeyEnv); key != "" {
			return key, nil
		}
	}
	return "", fmt.Errorf("API key not found in config or environment variable %s", apiKeyEnv)
}

// classify maps transport errors onto ErrTimeout or ErrUnavailable.
func classify(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	if errors.Is(err, ErrUnavailable) || errors.Is(err, ErrTimeout) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

func postJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return classify(ctx, fmt.Errorf("failed to make request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: API error %d: %s", ErrUnavailable, resp.StatusCode, string(msg))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return classify(ctx, fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}
