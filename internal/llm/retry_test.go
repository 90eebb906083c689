package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetryPassesThroughSuccess(t *testing.T) {
	mock := NewMockProvider(MockReply{Content: json.RawMessage(`{"hint":"ok"}`)})
	p := WithRetry(mock, fastRetry())

	reply, err := p.Generate(context.Background(), Prompt{})
	if err != nil {
		t.Fatal(err)
	}
	if string(reply.Content) != `{"hint":"ok"}` {
		t.Errorf("content = %s", reply.Content)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}

func TestRetryRecoversFromOutage(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Err: &UnavailableError{Err: errors.New("503")}},
		MockReply{Content: json.RawMessage(`{"hint":"ok"}`)},
	)
	p := WithRetry(mock, fastRetry())

	if _, err := p.Generate(context.Background(), Prompt{}); err != nil {
		t.Fatalf("expected recovery, got %v", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	down := MockReply{Err: &UnavailableError{Err: errors.New("503")}}
	mock := NewMockProvider(down, down, down, down)
	p := WithRetry(mock, fastRetry())

	if _, err := p.Generate(context.Background(), Prompt{}); err == nil {
		t.Fatal("expected the outage to surface")
	}
	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want 3", mock.CallCount())
	}
}

func TestRetryBadReplyGetsOneMoreChance(t *testing.T) {
	garbage := MockReply{Err: &BadReplyError{Raw: json.RawMessage(`wat`), Err: errors.New("not JSON")}}
	mock := NewMockProvider(
		garbage,
		garbage,
		MockReply{Content: json.RawMessage(`{"hint":"never reached"}`)},
	)
	p := WithRetry(mock, fastRetry())

	_, err := p.Generate(context.Background(), Prompt{})
	var bad *BadReplyError
	if !errors.As(err, &bad) {
		t.Fatalf("err = %T, want *BadReplyError", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2 (one retry only)", mock.CallCount())
	}
}

func TestRetryStopsOnCancelledContext(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Err: &UnavailableError{Err: errors.New("503")}},
		MockReply{Content: json.RawMessage(`{"hint":"ok"}`)},
	)
	p := WithRetry(mock, fastRetry())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Generate(ctx, Prompt{}); err == nil {
		t.Fatal("expected an error with a dead context")
	}
}

func TestRetryHonorsVendorRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Err: &RateLimitError{RetryAfter: time.Millisecond, Err: errors.New("429")}},
		MockReply{Content: json.RawMessage(`{"hint":"ok"}`)},
	)
	p := WithRetry(mock, fastRetry())

	if _, err := p.Generate(context.Background(), Prompt{}); err != nil {
		t.Fatalf("expected recovery after the rate limit, got %v", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
}

func TestRetryDelegatesModelID(t *testing.T) {
	p := WithRetry(NewMockProvider(), fastRetry())
	if p.ModelID() != "mock" {
		t.Errorf("model = %q, want mock", p.ModelID())
	}
}
