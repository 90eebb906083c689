package llm

import "context"

type purposeKey struct{}

// WithPurpose labels the context with what this call is for ("hint",
// "preview", ...). The logging decorator stores the label with each
// mascot request event.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom reads the label back, "unknown" when absent.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok {
		return p
	}
	return "unknown"
}
