// Package mascot implements Sparky, the robot guide. Hints come from an
// LLM provider when one is configured; otherwise Sparky falls back to
// canned lines so the portal works fully offline.
package mascot

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tinkerlab/tinkeralpha/internal/activities"
	"github.com/tinkerlab/tinkeralpha/internal/llm"
	"github.com/tinkerlab/tinkeralpha/internal/stagegraph"
)

// Config controls hint generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard hint generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   300,
		Temperature: 0.8,
	}
}

// Service produces Sparky's hints and cheers.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a mascot service. A nil provider is allowed; every
// hint then comes from the canned set.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type hintOutput struct {
	Hint  string `json:"hint"`
	Cheer string `json:"cheer"`
}

// Hint returns a nudge for the current stage.
func (s *Service) Hint(ctx context.Context, a activities.Activity, st stagegraph.Stage) (string, error) {
	if s.provider == nil {
		return cannedHint(st), nil
	}

	ctx = llm.WithPurpose(ctx, "hint")

	reply, err := s.provider.Generate(ctx, llm.Prompt{
		System:      hintSystemPrompt,
		User:        buildHintUserMessage(a, st),
		Schema:      HintSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("hint generation: %w", err)
	}

	var out hintOutput
	if err := json.Unmarshal(reply.Content, &out); err != nil {
		return "", fmt.Errorf("parse hint response: %w", err)
	}

	text := out.Hint
	if out.Cheer != "" {
		text += " " + out.Cheer
	}
	return text, nil
}

// Cheer returns a canned celebration line for a completed stage.
func (s *Service) Cheer(st stagegraph.Stage) string {
	switch st.Kind {
	case stagegraph.KindPuzzle:
		return "Puzzle power! Your brain is buzzing! ⚡"
	case stagegraph.KindComplete:
		return "You did the whole thing! Sparky is so proud! 🎉"
	default:
		return "Zap-tastic work! On to the next step! ⚡"
	}
}

// cannedHint picks an offline hint matched to the stage kind.
func cannedHint(st stagegraph.Stage) string {
	switch st.Kind {
	case stagegraph.KindIntro:
		return "Just watch and explore for now. Press Enter when you've seen it all!"
	case stagegraph.KindHandsOn:
		return "Check your wires one by one. Every part needs a friend on both ends!"
	case stagegraph.KindPractice:
		return "Try it again slowly. You learned everything you need in the build step!"
	case stagegraph.KindPuzzle:
		return "Think about what happens to the electricity at each part. Where does it stop?"
	default:
		return "You're doing great! Keep going!"
	}
}
