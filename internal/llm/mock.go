package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockReply scripts one answer for the MockProvider.
type MockReply struct {
	Content json.RawMessage
	Tokens  TokenUsage
	Err     error
}

// MockProvider plays back scripted replies in order and records every
// prompt it saw. An exhausted script answers with UnavailableError,
// which doubles as the cheap way to simulate an outage.
type MockProvider struct {
	mu     sync.Mutex
	script []MockReply
	Calls  []Prompt
}

// NewMockProvider scripts the given replies.
func NewMockProvider(script ...MockReply) *MockProvider {
	return &MockProvider{script: script}
}

func (m *MockProvider) Generate(_ context.Context, p Prompt) (*Reply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, p)

	if len(m.script) == 0 {
		return nil, &UnavailableError{}
	}
	next := m.script[0]
	m.script = m.script[1:]

	if next.Err != nil {
		return nil, next.Err
	}
	return &Reply{
		Content: next.Content,
		Tokens:  next.Tokens,
		Model:   "mock",
	}, nil
}

func (m *MockProvider) ModelID() string { return "mock" }

// CallCount reports how many prompts were generated so far.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
