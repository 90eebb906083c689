// Package llm is Sparky's connection to a language model. The portal
// only ever asks one question at a time (a hint, a cheer, a bit of
// encouragement), so the surface is single-turn: one system prompt,
// one user line, one JSON reply.
package llm

import (
	"context"
	"encoding/json"
)

// Provider answers a single Prompt. Implementations wrap one vendor
// SDK; decorators add retry and event logging on top.
type Provider interface {
	// Generate sends the prompt and returns Sparky's reply. When the
	// prompt carries a Schema the reply Content is JSON validated
	// against it; otherwise Content is the raw model text.
	Generate(ctx context.Context, p Prompt) (*Reply, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Prompt is one question for the model.
type Prompt struct {
	// System sets Sparky's persona and guardrails.
	System string

	// User is the single user turn. The portal never sends history;
	// every hint request stands alone.
	User string

	// Schema, when set, makes the provider request structured JSON
	// output and validate the reply against it.
	Schema *Schema

	// MaxTokens caps the reply length.
	MaxTokens int

	// Temperature in [0, 1]. Zero means deterministic.
	Temperature float64
}

// Schema names a JSON shape the reply must follow.
type Schema struct {
	// Name is a kebab-case identifier, e.g. "sparky-hint". Doubles as
	// the tool or schema name where a vendor wants one.
	Name string

	// Description tells the model what the shape is for.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Reply is the model's answer.
type Reply struct {
	// Content is validated JSON when the prompt had a Schema, raw
	// model text otherwise.
	Content json.RawMessage

	// Tokens is the token spend for this call.
	Tokens TokenUsage

	// Model is the model that actually served the call, which may be
	// more specific than the configured ID.
	Model string

	// Truncated is set when the model stopped at the MaxTokens cap,
	// meaning Content is likely cut off mid-thought.
	Truncated bool
}

// TokenUsage counts tokens for one call.
type TokenUsage struct {
	Input  int
	Output int
}

// Total returns input plus output tokens.
func (u TokenUsage) Total() int {
	return u.Input + u.Output
}
