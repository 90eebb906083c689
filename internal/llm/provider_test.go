package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProviderPlaysScriptInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Content: json.RawMessage(`{"hint":"Check the switch."}`), Tokens: TokenUsage{Input: 12, Output: 6}},
		MockReply{Content: json.RawMessage(`{"hint":"Flip the battery."}`)},
	)

	first, err := mock.Generate(context.Background(), Prompt{User: "The bulb won't light."})
	if err != nil {
		t.Fatal(err)
	}
	if string(first.Content) != `{"hint":"Check the switch."}` {
		t.Errorf("first reply = %s", first.Content)
	}
	if first.Tokens.Total() != 18 {
		t.Errorf("token total = %d, want 18", first.Tokens.Total())
	}

	second, err := mock.Generate(context.Background(), Prompt{User: "Still dark."})
	if err != nil {
		t.Fatal(err)
	}
	if string(second.Content) != `{"hint":"Flip the battery."}` {
		t.Errorf("second reply = %s", second.Content)
	}
}

func TestMockProviderExhaustedScriptIsAnOutage(t *testing.T) {
	mock := NewMockProvider()

	_, err := mock.Generate(context.Background(), Prompt{})
	var unavail *UnavailableError
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %T, want *UnavailableError", err)
	}
}

func TestMockProviderRecordsPrompts(t *testing.T) {
	mock := NewMockProvider(MockReply{Content: json.RawMessage(`{}`)})

	mock.Generate(context.Background(), Prompt{
		System: "You are Sparky.",
		User:   "Why is the motor quiet?",
	})

	if mock.CallCount() != 1 {
		t.Fatalf("call count = %d, want 1", mock.CallCount())
	}
	if mock.Calls[0].System != "You are Sparky." {
		t.Errorf("recorded system = %q", mock.Calls[0].System)
	}
	if mock.Calls[0].User != "Why is the motor quiet?" {
		t.Errorf("recorded user = %q", mock.Calls[0].User)
	}
}

func TestMockProviderScriptedError(t *testing.T) {
	mock := NewMockProvider(MockReply{Err: &RateLimitError{Err: errors.New("429")}})

	_, err := mock.Generate(context.Background(), Prompt{})
	var rl *RateLimitError
	if !errors.As(err, &rl) {
		t.Fatalf("err = %T, want *RateLimitError", err)
	}
}

func TestPurposeTravelsOnContext(t *testing.T) {
	ctx := context.Background()
	if got := PurposeFrom(ctx); got != "unknown" {
		t.Errorf("purpose on bare context = %q, want unknown", got)
	}

	ctx = WithPurpose(ctx, "hint")
	if got := PurposeFrom(ctx); got != "hint" {
		t.Errorf("purpose = %q, want hint", got)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"gemini with key", Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "test"}}, false},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "frontier-9000"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
