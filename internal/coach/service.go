// Package coach generates deeper walkthroughs for missed quiz questions.
// Generation runs asynchronously so the quiz loop never blocks on the
// provider; the session screen polls ConsumeExplanation on tick.
package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/llm"
)

// Service generates explanations asynchronously.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *Explanation
	err     error
	ready   bool
}

// NewService creates an explanation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// RequestExplanation starts async generation. Only one explanation is
// in-flight at a time — new requests replace pending ones.
func (s *Service) RequestExplanation(ctx context.Context, input ExplanationInput) {
	go func() {
		expl, err := s.generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = expl
		s.err = err
		s.ready = true
	}()
}

// ConsumeExplanation returns the pending explanation if one is ready.
// Returns (nil, false) if no explanation is ready yet.
// After consumption, the pending slot is cleared.
func (s *Service) ConsumeExplanation() (*Explanation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	expl := s.pending
	s.pending = nil
	s.ready = false
	s.err = nil
	return expl, expl != nil
}

type explanationOutput struct {
	Walkthrough   string `json:"walkthrough"`
	KeyInsight    string `json:"key_insight"`
	CheckYourself string `json:"check_yourself"`
}

func (s *Service) generate(ctx context.Context, input ExplanationInput) (*Explanation, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeExplanation)

	req := llm.Request{
		System:      explanationSystemPrompt,
		Prompt:      buildExplanationUserMessage(input),
		Schema:      ExplanationSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("explanation generation: %w", err)
	}

	var out explanationOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse explanation response: %w", err)
	}

	return &Explanation{
		Day:         input.Day,
		QuestionID:  input.Question.ID,
		Walkthrough: out.Walkthrough,
		KeyInsight:  out.KeyInsight,
		CheckItem:   out.CheckYourself,
	}, nil
}
