package llm

import (
	"context"
	"fmt"

	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/store"
)

// NewProvider builds the configured provider wrapped in the standard
// middleware: every call is retried on transient failure and logged to
// the coach event table.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown coach provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Logging sits inside retry so each attempt is its own event.
	return WithRetry(WithLogging(base, cfg.Provider, eventRepo), cfg.Retry), nil
}
