package llm

import "context"

// Purposes label what a request was for in the coach event log.
const (
	PurposeExplanation = "explanation"
)

type purposeKey struct{}

// WithPurpose tags the context so the logging layer can record why the
// call happened.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom reads the tag back, defaulting to "unknown".
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok {
		return p
	}
	return "unknown"
}
