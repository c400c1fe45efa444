package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// flakyProvider fails a fixed number of times before succeeding.
type flakyProvider struct {
	failures int
	err      error
	calls    int
}

func (f *flakyProvider) Generate(_ context.Context, _ Request) (*Response, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, f.err
	}
	return &Response{Content: json.RawMessage(walkthroughJSON), StopReason: "end"}, nil
}

func (f *flakyProvider) ModelID() string { return "flaky" }

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_SucceedsAfterTransientFailure(t *testing.T) {
	inner := &flakyProvider{failures: 2, err: &ErrProviderUnavailable{}}
	p := WithRetry(inner, fastRetryConfig())

	resp, err := p.Generate(context.Background(), Request{Prompt: "explain"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != walkthroughJSON {
		t.Fatalf("content = %s", resp.Content)
	}
	if inner.calls != 3 {
		t.Fatalf("calls = %d, want 3", inner.calls)
	}
}

func TestRetry_GivesUpAfterMaxAttempts(t *testing.T) {
	inner := &flakyProvider{failures: 10, err: &ErrProviderUnavailable{}}
	p := WithRetry(inner, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{Prompt: "explain"})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
	if inner.calls != 3 {
		t.Fatalf("calls = %d, want 3", inner.calls)
	}
}

func TestRetry_RateLimitRetries(t *testing.T) {
	inner := &flakyProvider{failures: 1, err: &ErrRateLimit{RetryAfter: time.Millisecond}}
	p := WithRetry(inner, fastRetryConfig())

	if _, err := p.Generate(context.Background(), Request{Prompt: "explain"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.calls != 2 {
		t.Fatalf("calls = %d, want 2", inner.calls)
	}
}

func TestRetry_InvalidResponseGetsOneRetry(t *testing.T) {
	inner := &flakyProvider{failures: 10, err: &ErrInvalidResponse{Err: errors.New("bad json")}}
	p := WithRetry(inner, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{Prompt: "explain"})
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
	if inner.calls != 2 {
		t.Fatalf("calls = %d, want exactly 2 (one retry for malformed output)", inner.calls)
	}
}

func TestRetry_MaxTokensNotRetried(t *testing.T) {
	inner := &flakyProvider{failures: 10, err: &ErrMaxTokensExceeded{}}
	p := WithRetry(inner, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{Prompt: "explain"})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %T", err)
	}
	if inner.calls != 1 {
		t.Fatalf("calls = %d, want 1 (token cap is not transient)", inner.calls)
	}
}

func TestRetry_ContextCancelNotRetried(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inner := &flakyProvider{failures: 10, err: ctx.Err()}
	p := WithRetry(inner, fastRetryConfig())

	_, err := p.Generate(ctx, Request{Prompt: "explain"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if inner.calls != 1 {
		t.Fatalf("calls = %d, want 1", inner.calls)
	}
}

func TestRetry_ModelIDPassesThrough(t *testing.T) {
	p := WithRetry(&flakyProvider{}, fastRetryConfig())
	if p.ModelID() != "flaky" {
		t.Fatalf("model = %q, want flaky", p.ModelID())
	}
}
