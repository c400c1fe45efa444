package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_ReplaysScript(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(walkthroughJSON),
			Usage:   Usage{InputTokens: 100, OutputTokens: 40, TotalTokens: 140},
		},
		MockResponse{Content: json.RawMessage(`{"key_insight":"second"}`)},
	)

	first, err := mock.Generate(context.Background(), Request{Prompt: "explain day 6"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(first.Content) != walkthroughJSON {
		t.Fatalf("first content = %s", first.Content)
	}
	if first.Usage.InputTokens != 100 {
		t.Fatalf("input tokens = %d, want 100", first.Usage.InputTokens)
	}
	if first.StopReason != "end" {
		t.Fatalf("stop reason = %q, want end", first.StopReason)
	}

	second, err := mock.Generate(context.Background(), Request{Prompt: "explain day 7"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(second.Content) != `{"key_insight":"second"}` {
		t.Fatalf("second content = %s", second.Content)
	}
}

func TestMockProvider_ExhaustedScriptFails(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
}

func TestMockProvider_RecordsRequests(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})

	_, _ = mock.Generate(context.Background(), Request{
		System: "You are a quantitative investing coach.",
		Prompt: "Walk through the mean-reversion z-score question.",
	})

	if mock.CallCount() != 1 {
		t.Fatalf("call count = %d, want 1", mock.CallCount())
	}
	if mock.Requests[0].Prompt != "Walk through the mean-reversion z-score question." {
		t.Fatalf("recorded prompt = %q", mock.Requests[0].Prompt)
	}
}

func TestMockProvider_ScriptedError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})
	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %T", err)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("untagged context purpose = %q, want unknown", p)
	}
	ctx = WithPurpose(ctx, PurposeExplanation)
	if p := PurposeFrom(ctx); p != "explanation" {
		t.Fatalf("purpose = %q, want explanation", p)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"openrouter with key", Config{Provider: "openrouter", OpenRouter: OpenRouterConfig{APIKey: "sk-test"}}, false},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "cohere"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDiscoverConfig(t *testing.T) {
	for _, env := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(env, "")
	}

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no discovery with all keys unset")
	}

	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery with ANTHROPIC_API_KEY set")
	}
	if cfg.Provider != "anthropic" || cfg.Anthropic.APIKey != "sk-test" {
		t.Fatalf("discovered %q / %q", cfg.Provider, cfg.Anthropic.APIKey)
	}

	// Gemini outranks Anthropic in the discovery order.
	t.Setenv("GEMINI_API_KEY", "g-test")
	cfg, ok = DiscoverConfig()
	if !ok || cfg.Provider != "gemini" {
		t.Fatalf("discovered %q, want gemini to win", cfg.Provider)
	}
}
