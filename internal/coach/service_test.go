package coach

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/curriculum"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/llm"
)

func validExplanationJSON() json.RawMessage {
	return json.RawMessage(`{
		"walkthrough": "1. Kelly fraction is f = p - q/b.\n2. Here p = 0.55, q = 0.45, b = 1.5.\n3. f = 0.55 - 0.45/1.5 = 0.55 - 0.30 = 0.25.",
		"key_insight": "The loss probability is divided by the payoff ratio before subtracting, not used directly.",
		"check_yourself": "What happens to the Kelly fraction as b grows very large?"
	}`)
}

func testInput() ExplanationInput {
	return ExplanationInput{
		Day:      14,
		DayTitle: "Kelly Position Sizing",
		Phase:    curriculum.PhaseForDay(14),
		Question: curriculum.Question{
			ID:            2,
			Kind:          curriculum.KindNumeric,
			Prompt:        "With p=0.55 and b=1.5, what is the Kelly fraction?",
			NumericAnswer: 0.25,
			Tolerance:     0.01,
		},
		LearnerAnswer: "0.55",
	}
}

// waitForExplanation polls ConsumeExplanation until ready or timeout.
func waitForExplanation(t *testing.T, svc *Service) (*Explanation, bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if expl, ok := svc.ConsumeExplanation(); ok {
			return expl, true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil, false
}

func TestService_GeneratesExplanation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validExplanationJSON(),
	})
	svc := NewService(mock, DefaultConfig())

	svc.RequestExplanation(t.Context(), testInput())

	expl, ok := waitForExplanation(t, svc)
	if !ok || expl == nil {
		t.Fatal("expected explanation to be generated")
	}

	if expl.Day != 14 || expl.QuestionID != 2 {
		t.Errorf("explanation tagged (%d, %d), want (14, 2)", expl.Day, expl.QuestionID)
	}
	if expl.Walkthrough == "" {
		t.Error("expected non-empty walkthrough")
	}
	if expl.KeyInsight == "" {
		t.Error("expected non-empty key insight")
	}
	if expl.CheckItem == "" {
		t.Error("expected non-empty self-check")
	}
}

func TestService_ConsumeClearsExplanation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validExplanationJSON(),
	})
	svc := NewService(mock, DefaultConfig())

	svc.RequestExplanation(t.Context(), testInput())

	if _, ok := waitForExplanation(t, svc); !ok {
		t.Fatal("expected explanation")
	}

	// Second consume should return false.
	if _, ok := svc.ConsumeExplanation(); ok {
		t.Error("expected second ConsumeExplanation to return false")
	}
}

func TestService_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	svc := NewService(mock, DefaultConfig())

	svc.RequestExplanation(t.Context(), testInput())

	time.Sleep(100 * time.Millisecond)

	expl, ok := svc.ConsumeExplanation()
	if ok && expl != nil {
		t.Error("expected no explanation on provider error")
	}
}

func TestService_RequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validExplanationJSON(),
	})
	svc := NewService(mock, DefaultConfig())

	svc.RequestExplanation(t.Context(), testInput())

	if _, ok := waitForExplanation(t, svc); !ok {
		t.Fatal("expected explanation")
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Requests[0]
	if req.Schema != ExplanationSchema {
		t.Error("expected request to carry the explanation schema")
	}
	if req.System == "" {
		t.Error("expected a system prompt")
	}
	if !strings.Contains(req.Prompt, "Kelly") {
		t.Fatalf("prompt missing question context: %q", req.Prompt)
	}
}
