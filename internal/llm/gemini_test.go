package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelAliases(t *testing.T) {
	tests := []struct {
		alias string
		want  string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"}, // direct ID passes through
	}
	for _, tt := range tests {
		if got := resolveModel(tt.alias, geminiModels); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.alias, got, tt.want)
		}
	}
}

func TestGenaiSchema_WalkthroughShape(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"walkthrough":    map[string]any{"type": "string", "description": "steps"},
			"key_insight":    map[string]any{"type": "string"},
			"check_yourself": map[string]any{"type": "string"},
		},
		"required": []any{"walkthrough", "key_insight", "check_yourself"},
	}

	s := genaiSchema(def)
	if s.Type != genai.TypeObject {
		t.Fatalf("type = %v, want object", s.Type)
	}
	if len(s.Properties) != 3 {
		t.Fatalf("properties = %d, want 3", len(s.Properties))
	}
	if s.Properties["walkthrough"].Type != genai.TypeString {
		t.Errorf("walkthrough type = %v, want string", s.Properties["walkthrough"].Type)
	}
	if s.Properties["walkthrough"].Description != "steps" {
		t.Errorf("description = %q", s.Properties["walkthrough"].Description)
	}
	if len(s.Required) != 3 {
		t.Errorf("required = %v, want 3 fields", s.Required)
	}
}

func TestGenaiSchema_NestedAndTyped(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"day":    map[string]any{"type": "integer"},
			"score":  map[string]any{"type": "number"},
			"passed": map[string]any{"type": "boolean"},
			"phase":  map[string]any{"type": "string", "enum": []any{"foundations", "quant-mechanics"}},
			"steps": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
	}

	s := genaiSchema(def)
	if s.Properties["day"].Type != genai.TypeInteger {
		t.Errorf("day type = %v, want integer", s.Properties["day"].Type)
	}
	if s.Properties["score"].Type != genai.TypeNumber {
		t.Errorf("score type = %v, want number", s.Properties["score"].Type)
	}
	if s.Properties["passed"].Type != genai.TypeBoolean {
		t.Errorf("passed type = %v, want boolean", s.Properties["passed"].Type)
	}
	if got := s.Properties["phase"].Enum; len(got) != 2 || got[0] != "foundations" {
		t.Errorf("phase enum = %v", got)
	}
	steps := s.Properties["steps"]
	if steps.Type != genai.TypeArray || steps.Items == nil || steps.Items.Type != genai.TypeString {
		t.Errorf("steps schema = %+v, want array of strings", steps)
	}
}

func TestGeminiProvider_RequiresKey(t *testing.T) {
	if _, err := NewGeminiProvider(t.Context(), GeminiConfig{}); err == nil {
		t.Fatal("expected error without API key")
	}
}
