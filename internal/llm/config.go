package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures Sparky's model provider.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "mock".
	Provider string

	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Gemini    GeminiConfig
	Retry     RetryConfig

	// Timeout bounds one hint request end to end, retries included.
	Timeout time.Duration
}

// AnthropicConfig configures the Anthropic provider.
type AnthropicConfig struct {
	APIKey string
	Model  string
}

// OpenAIConfig configures the OpenAI provider. BaseURL points the SDK
// at an OpenAI-compatible gateway when set.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// GeminiConfig configures the Gemini provider.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// RetryConfig shapes the backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig picks the cheap, fast model for each vendor. A hint for
// a six-year-old does not need a frontier model.
func DefaultConfig() Config {
	return Config{
		Provider:  "anthropic",
		Anthropic: AnthropicConfig{Model: "claude-haiku"},
		OpenAI:    OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:    GeminiConfig{Model: "gemini-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv overlays TINKER_-prefixed environment variables on the
// defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	setenv := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setenv(&cfg.Provider, "TINKER_LLM_PROVIDER")
	setenv(&cfg.Anthropic.APIKey, "TINKER_ANTHROPIC_API_KEY")
	setenv(&cfg.Anthropic.Model, "TINKER_ANTHROPIC_MODEL")
	setenv(&cfg.OpenAI.APIKey, "TINKER_OPENAI_API_KEY")
	setenv(&cfg.OpenAI.Model, "TINKER_OPENAI_MODEL")
	setenv(&cfg.OpenAI.BaseURL, "TINKER_OPENAI_BASE_URL")
	setenv(&cfg.Gemini.APIKey, "TINKER_GEMINI_API_KEY")
	setenv(&cfg.Gemini.Model, "TINKER_GEMINI_MODEL")

	return cfg
}

// DiscoverConfig probes the vendors' standard API key variables when no
// TINKER_ configuration is present, cheapest vendor first. Returns
// false when no key is found; the portal then runs with canned hints.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider, cfg.Gemini.APIKey = "gemini", k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider, cfg.OpenAI.APIKey = "openai", k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider, cfg.Anthropic.APIKey = "anthropic", k
		return cfg, true
	}
	return Config{}, false
}

// Validate checks that the selected provider has its API key.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("TINKER_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("TINKER_OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("TINKER_GEMINI_API_KEY is required for the gemini provider")
		}
	case "mock":
		// Keyless, for tests and demos.
	default:
		return fmt.Errorf("unknown model provider: %q", c.Provider)
	}
	return nil
}
