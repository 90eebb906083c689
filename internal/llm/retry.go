package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retrier retries transient vendor failures with jittered exponential
// backoff. A schema-violating reply gets exactly one more chance; a
// cancelled context stops everything immediately.
type retrier struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps a provider in the retry decorator.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retrier{inner: p, cfg: cfg}
}

func (r *retrier) ModelID() string {
	return r.inner.ModelID()
}

func (r *retrier) Generate(ctx context.Context, p Prompt) (*Reply, error) {
	badReplies := 0
	var lastErr error

	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		reply, err := r.inner.Generate(ctx, p)
		if err == nil {
			return reply, nil
		}
		lastErr = err

		if !retryable(err, &badReplies) || attempt == r.cfg.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.wait(attempt, err)):
		}
	}
	return nil, lastErr
}

// retryable classifies an error. badReplies counts schema violations so
// only the first one earns a retry; re-asking a model that keeps
// returning garbage just burns tokens.
func retryable(err error, badReplies *int) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var bad *BadReplyError
	if errors.As(err, &bad) {
		*badReplies++
		return *badReplies <= 1
	}

	// Rate limits, vendor outages, and plain network errors are all
	// worth another attempt.
	return true
}

// wait computes the sleep before the next attempt. A vendor-supplied
// RetryAfter wins over the computed backoff.
func (r *retrier) wait(attempt int, err error) time.Duration {
	var rl *RateLimitError
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	base := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	base = math.Min(base, float64(r.cfg.MaxWait))

	// Spread attempts out with up to 20% jitter either way.
	base *= 1 + 0.2*(2*rand.Float64()-1)
	return time.Duration(math.Max(base, 0))
}
