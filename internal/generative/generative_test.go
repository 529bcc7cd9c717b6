package generative_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"silktouch/internal/config"
	"silktouch/internal/generative"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiGenerate(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-1.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Hello "},{"text":"there"}]}}]}`))
	}))
	defer srv.Close()

	gen, err := generative.NewGeminiGenerator("gemini-1.5-flash", "", "test-key", srv.URL, srv.Client())
	require.NoError(t, err)

	text, err := gen.Generate(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "Hello there", text)

	cfg := body["generationConfig"].(map[string]any)
	assert.Equal(t, 0.7, cfg["temperature"])
	assert.Equal(t, float64(40), cfg["topK"])
	assert.Equal(t, 0.95, cfg["topP"])
	assert.Equal(t, float64(1024), cfg["maxOutputTokens"])
}

func TestGeminiAPIErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"bad key"}`))
	}))
	defer srv.Close()

	gen, err := generative.NewGeminiGenerator("m", "", "k", srv.URL, srv.Client())
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), "hi")
	assert.ErrorIs(t, err, generative.ErrUnavailable)
	assert.ErrorContains(t, err, "bad key")
}

func TestGenerateTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	gen, err := generative.NewOpenAIGenerator("gpt", "", "k", srv.URL, srv.Client())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = gen.Generate(ctx, "hi")
	assert.ErrorIs(t, err, generative.ErrTimeout)
}

func TestOpenAIGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer k", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`))
	}))
	defer srv.Close()

	gen, err := generative.NewOpenAIGenerator("gpt", "", "k", srv.URL, srv.Client())
	require.NoError(t, err)
	text, err := gen.Generate(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
}

func TestAnthropicGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "k", r.Header.Get("x-api-key"))
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"claude says hi"}]}`))
	}))
	defer srv.Close()

	gen, err := generative.NewAnthropicGenerator("claude", "", "k", srv.URL, srv.Client())
	require.NoError(t, err)
	text, err := gen.Generate(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "claude says hi", text)
}

func TestAPIKeyFromEnvironment(t *testing.T) {
	t.Setenv("SILKTOUCH_TEST_KEY", "from-env")
	_, err := generative.NewGeminiGenerator("m", "SILKTOUCH_TEST_KEY", "", "", http.DefaultClient)
	assert.NoError(t, err)

	_, err = generative.NewGeminiGenerator("m", "SILKTOUCH_MISSING_KEY", "", "", http.DefaultClient)
	assert.ErrorContains(t, err, "API key not found")
}

func TestNewProviders(t *testing.T) {
	gen, err := generative.New(config.GenerativeConfig{Provider: "none"})
	require.NoError(t, err)
	assert.Nil(t, gen)

	gen, err = generative.New(config.GenerativeConfig{Provider: "mock", Model: "m"})
	require.NoError(t, err)
	assert.Equal(t, "m-mock", gen.Model())

	_, err = generative.New(config.GenerativeConfig{Provider: "cohere"})
	assert.ErrorContains(t, err, "unsupported generator provider")
}

func TestMockEchoesQuery(t *testing.T) {
	gen := generative.NewMockGenerator("m")
	text, err := gen.Generate(context.Background(), "context\nCUSTOMER QUERY: red dress\nPlease answer")
	require.NoError(t, err)
	assert.Contains(t, text, `"red dress"`)
}

func TestTrackedRecordsOutcome(t *testing.T) {
	tracked := generative.NewTracked(config.GenerativeConfig{Provider: "gemini", APIKeyEnv: "SILKTOUCH_MISSING_KEY"})
	st := tracked.Status()
	assert.False(t, st.Available)
	assert.False(t, st.APIKeyPresent)
	assert.Contains(t, st.InitError, "API key not found")
	_, err := tracked.Generate(context.Background(), "hi")
	assert.ErrorIs(t, err, generative.ErrUnavailable)

	tracked = generative.NewTracked(config.GenerativeConfig{Provider: "mock", Model: "m"})
	_, err = tracked.Generate(context.Background(), "hi")
	require.NoError(t, err)
	st = tracked.Status()
	assert.True(t, st.Available)
	assert.Equal(t, "m-mock", st.Model)
	assert.NotNil(t, st.LastSuccessAt)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = tracked.Generate(ctx, "hi")
	require.Error(t, err)
	assert.NotEmpty(t, tracked.Status().LastError)
}
