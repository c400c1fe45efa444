package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// walkthroughSchema mirrors the shape the coach requests for missed
// questions.
func walkthroughSchema() *Schema {
	return &Schema{
		Name:        "walkthrough-test",
		Description: "A walkthrough of a missed quiz question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"walkthrough":    map[string]any{"type": "string"},
				"key_insight":    map[string]any{"type": "string"},
				"check_yourself": map[string]any{"type": "string"},
			},
			"required":             []any{"walkthrough", "key_insight"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse_Conforming(t *testing.T) {
	raw := json.RawMessage(walkthroughJSON)
	if err := validateResponse(walkthroughSchema(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_OptionalFieldMayBeAbsent(t *testing.T) {
	raw := json.RawMessage(`{"walkthrough":"Steps.","key_insight":"The point."}`)
	if err := validateResponse(walkthroughSchema(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"walkthrough":"Steps only."}`)
	err := validateResponse(walkthroughSchema(), raw)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"walkthrough":42,"key_insight":"x"}`)
	err := validateResponse(walkthroughSchema(), raw)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponse_ExtraFieldRejected(t *testing.T) {
	raw := json.RawMessage(`{"walkthrough":"s","key_insight":"k","confidence":0.9}`)
	err := validateResponse(walkthroughSchema(), raw)
	if err == nil {
		t.Fatal("expected error for additional property")
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(walkthroughSchema(), raw)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponse_Empty(t *testing.T) {
	if err := validateResponse(walkthroughSchema(), json.RawMessage(``)); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchemaPassesAnything(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_EnumAndArray(t *testing.T) {
	schema := &Schema{
		Name: "day-report-test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"phase": map[string]any{
					"type": "string",
					"enum": []any{"foundations", "quant-mechanics", "application"},
				},
				"missed_days": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "integer"},
				},
			},
			"required": []any{"phase", "missed_days"},
		},
	}

	valid := json.RawMessage(`{"phase":"quant-mechanics","missed_days":[3,9]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	badEnum := json.RawMessage(`{"phase":"warmup","missed_days":[]}`)
	if err := validateResponse(schema, badEnum); err == nil {
		t.Fatal("expected error for out-of-enum phase")
	}

	badItems := json.RawMessage(`{"phase":"application","missed_days":["three"]}`)
	if err := validateResponse(schema, badItems); err == nil {
		t.Fatal("expected error for non-integer array items")
	}
}
