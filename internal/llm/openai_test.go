package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func openaiTestServer(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = server.URL + "/v1"
	return &OpenAIProvider{client: openai.NewClientWithConfig(cfg), model: "gpt-4o-mini"}
}

func TestOpenAIGenerate(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1234567890,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{{
				"index": 0,
				"message": map[string]any{
					"role":    "assistant",
					"content": `{"hint":"Try swapping the battery around."}`,
				},
				"finish_reason": "stop",
			}},
			"usage": map[string]any{
				"prompt_tokens":     40,
				"completion_tokens": 25,
				"total_tokens":      65,
			},
		})
	}

	p := openaiTestServer(t, handler)
	reply, err := p.Generate(context.Background(), Prompt{
		System:    "You are Sparky, a cheerful robot.",
		User:      "The motor hums but the wheel is still.",
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatal(err)
	}
	if reply.Tokens.Input != 40 || reply.Tokens.Output != 25 {
		t.Errorf("tokens = %+v, want 40 in / 25 out", reply.Tokens)
	}
	if reply.Truncated {
		t.Error("stop finish should not read as truncated")
	}
}

func TestOpenAIRateLimit(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"type":    "tokens",
				"message": "Rate limit exceeded",
				"code":    "rate_limit_exceeded",
			},
		})
	}

	p := openaiTestServer(t, handler)
	_, err := p.Generate(context.Background(), Prompt{User: "hint please", MaxTokens: 100})
	var rl *RateLimitError
	if !errors.As(err, &rl) {
		t.Fatalf("err = %T (%v), want *RateLimitError", err, err)
	}
}

func TestOpenAIServerError(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"type": "server_error", "message": "Internal server error"},
		})
	}

	p := openaiTestServer(t, handler)
	_, err := p.Generate(context.Background(), Prompt{User: "hint please", MaxTokens: 100})
	var unavail *UnavailableError
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %T (%v), want *UnavailableError", err, err)
	}
}

func TestOpenAIGatewayBaseURL(t *testing.T) {
	p, err := NewOpenAIProvider(OpenAIConfig{
		APIKey:  "test-key",
		Model:   "gpt-4o",
		BaseURL: "https://gateway.example.com/v1",
	})
	if err != nil {
		t.Fatal(err)
	}
	if p.ModelID() != "gpt-4o" {
		t.Errorf("model = %q, want gpt-4o", p.ModelID())
	}
}
