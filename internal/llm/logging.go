package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/store"
)

// LoggingProvider is a decorator that records every coach request as an event.
type LoggingProvider struct {
	inner        Provider
	providerName string
	eventRepo    store.EventRepo
}

// WithLogging wraps a Provider with event logging.
func WithLogging(p Provider, providerName string, repo store.EventRepo) Provider {
	return &LoggingProvider{inner: p, providerName: providerName, eventRepo: repo}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	data := store.CoachRequestEventData{
		Provider:  l.providerName,
		Model:     l.inner.ModelID(),
		Purpose:   purpose,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the event but don't fail the request if logging fails.
	if logErr := l.eventRepo.AppendCoachRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log coach request event: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
