package providers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AzielCF/az-medical-mcp/core/config"
	"github.com/AzielCF/az-medical-mcp/domains/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var completionRequest = analysis.CompletionRequest{
	SystemPrompt: "system instructions",
	UserPrompt:   "=== MEDICAL DOCUMENT ===\nBP 140/90\n=== END DOCUMENT ===",
	MaxTokens:    1000,
	Temperature:  0.1,
}

// captureServer answers every request with body and records the last request payload.
func captureServer(t *testing.T, status int, body string) (*httptest.Server, *map[string]any) {
	t.Helper()
	captured := map[string]any{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &captured)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &captured
}

func TestAnthropicProvider_Complete(t *testing.T) {
	srv, captured := captureServer(t, http.StatusOK, `{
		"id": "msg_1", "type": "message", "role": "assistant",
		"model": "claude-sonnet-4-5-20250929",
		"content": [{"type": "text", "text": "{\"vital_signs\": {}}"}],
		"stop_reason": "end_turn",
		"usage": {"input_tokens": 120, "output_tokens": 30}
	}`)

	p := NewAnthropicProvider(Config{APIKey: "test", Model: config.DefaultAnthropicModel, BaseURL: srv.URL})
	resp, err := p.Complete(context.Background(), completionRequest)
	require.NoError(t, err)

	assert.Equal(t, `{"vital_signs": {}}`, resp.Text)
	assert.Equal(t, config.DefaultAnthropicModel, resp.Model)
	assert.Equal(t, analysis.TokenUsage{InputTokens: 120, OutputTokens: 30, TotalTokens: 150}, resp.Usage)
	assert.Equal(t, float64(1000), (*captured)["max_tokens"])
	assert.Equal(t, 0.1, (*captured)["temperature"])
}

func TestAnthropicProvider_AuthFailure(t *testing.T) {
	srv, _ := captureServer(t, http.StatusUnauthorized,
		`{"type": "error", "error": {"type": "authentication_error", "message": "invalid x-api-key"}}`)

	p := NewAnthropicProvider(Config{APIKey: "bad", Model: config.DefaultAnthropicModel, BaseURL: srv.URL})
	_, err := p.Complete(context.Background(), completionRequest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestOpenAIProvider_Complete(t *testing.T) {
	srv, captured := captureServer(t, http.StatusOK, `{
		"id": "chatcmpl-1", "object": "chat.completion", "created": 1700000000, "model": "gpt-4o",
		"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "{\"medications\": []}"}}],
		"usage": {"prompt_tokens": 80, "completion_tokens": 20, "total_tokens": 100}
	}`)

	p := NewOpenAIProvider(Config{APIKey: "test", Model: config.DefaultOpenAIModel, BaseURL: srv.URL})
	resp, err := p.Complete(context.Background(), completionRequest)
	require.NoError(t, err)

	assert.Equal(t, `{"medications": []}`, resp.Text)
	assert.Equal(t, analysis.TokenUsage{InputTokens: 80, OutputTokens: 20, TotalTokens: 100}, resp.Usage)

	messages, ok := (*captured)["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]any)["role"])
	assert.Equal(t, "user", messages[1].(map[string]any)["role"])
}

func TestOpenAIProvider_RateLimited(t *testing.T) {
	srv, _ := captureServer(t, http.StatusTooManyRequests,
		`{"error": {"message": "Rate limit reached", "type": "requests", "code": "rate_limit_exceeded"}}`)

	p := NewOpenAIProvider(Config{APIKey: "test", Model: config.DefaultOpenAIModel, BaseURL: srv.URL})
	_, err := p.Complete(context.Background(), completionRequest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGeminiProvider_Complete(t *testing.T) {
	srv, captured := captureServer(t, http.StatusOK, `{
		"candidates": [{"content": {"role": "model", "parts": [{"text": "{\"conditions\": "}, {"text": "[]}"}]}}],
		"usageMetadata": {"promptTokenCount": 50, "candidatesTokenCount": 10, "totalTokenCount": 60}
	}`)

	p := NewGeminiProvider(Config{APIKey: "test", Model: config.DefaultGeminiModel, BaseURL: srv.URL})
	resp, err := p.Complete(context.Background(), completionRequest)
	require.NoError(t, err)

	assert.Equal(t, `{"conditions": []}`, resp.Text)
	assert.Equal(t, analysis.TokenUsage{InputTokens: 50, OutputTokens: 10, TotalTokens: 60}, resp.Usage)
	raw, _ := json.Marshal(*captured)
	assert.True(t, strings.Contains(string(raw), "system instructions"))
}

func TestNewChain(t *testing.T) {
	t.Run("no keys", func(t *testing.T) {
		chain := NewChain(&config.Config{})
		_, ok := chain.Select()
		assert.False(t, ok)
		assert.Equal(t, map[string]bool{"anthropic": false, "openai": false, "gemini": false}, chain.Configured())
	})

	t.Run("only openai", func(t *testing.T) {
		chain := NewChain(&config.Config{APIKeys: config.APIKeysConfig{OpenAI: "sk-test"}})
		sel, ok := chain.Select()
		require.True(t, ok)
		assert.Equal(t, NameOpenAI, sel.Provider.Name())
		assert.True(t, sel.FallbackUsed)
	})

	t.Run("anthropic first", func(t *testing.T) {
		chain := NewChain(&config.Config{
			APIKeys: config.APIKeysConfig{Anthropic: "a", OpenAI: "o", Gemini: "g"},
			AI:      config.AIConfig{AnthropicModel: config.DefaultAnthropicModel},
		})
		sel, ok := chain.Select()
		require.True(t, ok)
		assert.Equal(t, NameAnthropic, sel.Provider.Name())
		assert.Equal(t, config.DefaultAnthropicModel, sel.Provider.Model())
		assert.False(t, sel.FallbackUsed)
	})
}
