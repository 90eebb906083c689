package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

func anthropicTestServer(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
	)
	return &AnthropicProvider{client: &client, model: "claude-haiku-4-5-20251001"}
}

func TestAnthropicGenerate(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":   "msg_test",
			"type": "message",
			"role": "assistant",
			"content": []map[string]any{
				{"type": "text", "text": `{"hint":"Is the switch pushed all the way down?"}`},
			},
			"model":       "claude-haiku-4-5-20251001",
			"stop_reason": "end_turn",
			"usage": map[string]any{
				"input_tokens":  50,
				"output_tokens": 30,
			},
		})
	}

	p := anthropicTestServer(t, handler)
	reply, err := p.Generate(context.Background(), Prompt{
		System:    "You are Sparky, a cheerful robot.",
		User:      "The bulb stays dark. What should I check?",
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatal(err)
	}
	if reply.Tokens.Input != 50 || reply.Tokens.Output != 30 {
		t.Errorf("tokens = %+v, want 50 in / 30 out", reply.Tokens)
	}
	if reply.Truncated {
		t.Error("end_turn should not read as truncated")
	}
}

func TestAnthropicTruncation(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":          "msg_test",
			"type":        "message",
			"role":        "assistant",
			"content":     []map[string]any{{"type": "text", "text": `{"hint":"Check the`}},
			"model":       "claude-haiku-4-5-20251001",
			"stop_reason": "max_tokens",
			"usage":       map[string]any{"input_tokens": 50, "output_tokens": 8},
		})
	}

	p := anthropicTestServer(t, handler)
	reply, err := p.Generate(context.Background(), Prompt{User: "hint please", MaxTokens: 8})
	if err != nil {
		t.Fatal(err)
	}
	if !reply.Truncated {
		t.Error("max_tokens stop should mark the reply truncated")
	}
}

func TestAnthropicRateLimit(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"type":  "error",
			"error": map[string]any{"type": "rate_limit_error", "message": "Rate limit exceeded"},
		})
	}

	p := anthropicTestServer(t, handler)
	_, err := p.Generate(context.Background(), Prompt{User: "hint please", MaxTokens: 100})
	var rl *RateLimitError
	if !errors.As(err, &rl) {
		t.Fatalf("err = %T (%v), want *RateLimitError", err, err)
	}
}

func TestAnthropicServerError(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"type":  "error",
			"error": map[string]any{"type": "api_error", "message": "Internal server error"},
		})
	}

	p := anthropicTestServer(t, handler)
	_, err := p.Generate(context.Background(), Prompt{User: "hint please", MaxTokens: 100})
	var unavail *UnavailableError
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %T (%v), want *UnavailableError", err, err)
	}
}

func TestAnthropicFriendlyModelNames(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"claude-haiku", "claude-haiku-4-5-20251001"},
		{"claude-sonnet", "claude-sonnet-4-20250514"},
		{"claude-haiku-4-5-20251001", "claude-haiku-4-5-20251001"},
	}
	for _, tc := range cases {
		if got := resolveModel(tc.in, anthropicModels); got != tc.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
