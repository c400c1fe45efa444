package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures the coach's model provider.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "openrouter",
	// or "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single coach call including retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string // friendly alias or model ID; default "claude-haiku"
}

type OpenAIConfig struct {
	APIKey  string
	Model   string // default "gpt-4o-mini"
	BaseURL string // override for OpenAI-compatible APIs
}

type GeminiConfig struct {
	APIKey string
	Model  string // default "gemini-flash"
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string // vendor-prefixed, default "google/gemini-2.0-flash-exp"
	BaseURL string
}

// RetryConfig shapes the backoff in RetryProvider.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig picks the cheap-and-fast model for each provider; a
// walkthrough is a few hundred tokens, nothing needs a frontier model.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv overlays STUDYCOACH_* environment variables on the
// defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	setEnv := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setEnv("STUDYCOACH_LLM_PROVIDER", &cfg.Provider)
	setEnv("STUDYCOACH_ANTHROPIC_API_KEY", &cfg.Anthropic.APIKey)
	setEnv("STUDYCOACH_ANTHROPIC_MODEL", &cfg.Anthropic.Model)
	setEnv("STUDYCOACH_OPENAI_API_KEY", &cfg.OpenAI.APIKey)
	setEnv("STUDYCOACH_OPENAI_MODEL", &cfg.OpenAI.Model)
	setEnv("STUDYCOACH_OPENAI_BASE_URL", &cfg.OpenAI.BaseURL)
	setEnv("STUDYCOACH_GEMINI_API_KEY", &cfg.Gemini.APIKey)
	setEnv("STUDYCOACH_GEMINI_MODEL", &cfg.Gemini.Model)
	setEnv("STUDYCOACH_OPENROUTER_API_KEY", &cfg.OpenRouter.APIKey)
	setEnv("STUDYCOACH_OPENROUTER_MODEL", &cfg.OpenRouter.Model)

	return cfg
}

// DiscoverConfig probes the standard vendor API key variables so the
// coach works without any STUDYCOACH_* setup. First key found wins.
func DiscoverConfig() (Config, bool) {
	probes := []struct {
		env      string
		provider string
		apply    func(*Config, string)
	}{
		{"GEMINI_API_KEY", "gemini", func(c *Config, k string) { c.Gemini.APIKey = k }},
		{"OPENAI_API_KEY", "openai", func(c *Config, k string) { c.OpenAI.APIKey = k }},
		{"ANTHROPIC_API_KEY", "anthropic", func(c *Config, k string) { c.Anthropic.APIKey = k }},
		{"OPENROUTER_API_KEY", "openrouter", func(c *Config, k string) { c.OpenRouter.APIKey = k }},
	}

	for _, p := range probes {
		if key := os.Getenv(p.env); key != "" {
			cfg := DefaultConfig()
			cfg.Provider = p.provider
			p.apply(&cfg, key)
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks the selected provider has its API key.
func (c Config) Validate() error {
	missing := func(env string) error {
		return fmt.Errorf("%s is required for the %s provider", env, c.Provider)
	}
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return missing("STUDYCOACH_ANTHROPIC_API_KEY")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return missing("STUDYCOACH_OPENAI_API_KEY")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return missing("STUDYCOACH_GEMINI_API_KEY")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return missing("STUDYCOACH_OPENROUTER_API_KEY")
		}
	case "mock":
		// Runs offline.
	default:
		return fmt.Errorf("unknown coach provider: %q", c.Provider)
	}
	return nil
}
