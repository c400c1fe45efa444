package coach

import "github.com/mattmattheisen/smallcap-lab-study-coach/internal/llm"

// ExplanationSchema defines the JSON schema for missed-question walkthroughs.
var ExplanationSchema = &llm.Schema{
	Name:        "question-explanation",
	Description: "A walkthrough of a quiz question the learner answered incorrectly",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"walkthrough": map[string]any{
				"type":        "string",
				"description": "Step-by-step reasoning to the correct answer (3-6 sentences, numbered steps for calculations)",
			},
			"key_insight": map[string]any{
				"type":        "string",
				"description": "The single concept the learner most likely missed (1-2 sentences)",
			},
			"check_yourself": map[string]any{
				"type":        "string",
				"description": "One short question the learner can use to verify understanding",
			},
		},
		"required":             []any{"walkthrough", "key_insight", "check_yourself"},
		"additionalProperties": false,
	},
}
