// Package llm abstracts the model providers behind the study coach.
// Every call is a single prompt turn that asks for structured JSON: the
// coach sends one system prompt plus one user message and expects a
// response conforming to a schema. There is no conversation state.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the interface the coach talks to.
type Provider interface {
	// Generate sends one prompt turn and returns structured output.
	// When the request carries a Schema, the provider uses its native
	// structured-output mechanism and the returned Content is JSON
	// validated against that schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Request is one prompt turn.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Prompt is the user message for this turn.
	Prompt string

	// Schema, when set, constrains the output to a JSON shape.
	// When nil the response Content is the raw text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0, 1]; zero means deterministic.
	Temperature float64
}

// Schema names a JSON Schema the response must satisfy.
type Schema struct {
	// Name identifies the schema to the provider (tool name for
	// Anthropic, schema name for OpenAI). Kebab-case.
	Name string

	// Description guides generation; sent to the model.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model's output for one request.
type Response struct {
	// Content is the generated output: validated JSON when the request
	// carried a schema, raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage is token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// resolveModel maps a friendly alias to a provider model ID, passing
// unknown names through so direct model IDs keep working.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
