package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/tinkerlab/tinkeralpha/internal/store"
)

// LoggingProvider records every model call as a mascot request event:
// model, purpose, token spend, latency, outcome. With a nil repo the
// decorator is a pass-through, which the stateless hint command uses.
type LoggingProvider struct {
	inner     Provider
	eventRepo store.EventRepo
}

// WithLogging wraps a provider in the event-logging decorator.
func WithLogging(p Provider, repo store.EventRepo) Provider {
	return &LoggingProvider{inner: p, eventRepo: repo}
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

func (l *LoggingProvider) Generate(ctx context.Context, p Prompt) (*Reply, error) {
	start := time.Now()

	reply, err := l.inner.Generate(ctx, p)
	if l.eventRepo == nil {
		return reply, err
	}

	data := store.MascotRequestEventData{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if reply != nil {
		data.Model = reply.Model
		data.InputTokens = reply.Tokens.Input
		data.OutputTokens = reply.Tokens.Output
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// A failed log line must not fail the hint itself.
	if logErr := l.eventRepo.AppendMascotRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log mascot request event: %v\n", logErr)
	}

	return reply, err
}
