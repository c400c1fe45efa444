package review

import (
	"testing"

	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/curriculum"
)

// sampleTopics builds five days. Every day carries recall filler alongside
// its gradeable questions; day 4 holds recall prompts only.
func sampleTopics() []curriculum.Topic {
	topics := make([]curriculum.Topic, 5)
	for d := 1; d <= 5; d++ {
		t := curriculum.Topic{Day: d, Title: "Day", Phase: curriculum.PhaseForDay(d)}
		if d != 4 {
			t.Questions = append(t.Questions,
				curriculum.Question{ID: 1, Kind: curriculum.KindMultipleChoice, Prompt: "mc"},
				curriculum.Question{ID: 2, Kind: curriculum.KindNumeric, Prompt: "num"},
			)
		}
		t.Questions = append(t.Questions,
			curriculum.Question{ID: 3, Kind: curriculum.KindRecall, Prompt: "recall"},
			curriculum.Question{ID: 4, Kind: curriculum.KindRecall, Prompt: "recall"},
		)
		topics[d-1] = t
	}
	return topics
}

func TestSample_OnePerEarlierDay(t *testing.T) {
	items := Sample(sampleTopics(), 4, 10, 42)
	if len(items) != 3 {
		t.Fatalf("sampled %d items, want 3 (one per day 1-3)", len(items))
	}
	seen := make(map[int]bool)
	for _, it := range items {
		if it.Day >= 4 {
			t.Errorf("sampled question from day %d, want < 4", it.Day)
		}
		if seen[it.Day] {
			t.Errorf("day %d contributed more than one question", it.Day)
		}
		seen[it.Day] = true
	}
}

func TestSample_PrefersGradeable(t *testing.T) {
	// Days 1-3 all hold gradeable questions, so no seed may draw a
	// recall prompt from them.
	for seed := uint64(0); seed < 50; seed++ {
		for _, it := range Sample(sampleTopics(), 4, 3, seed) {
			if it.Question.Kind == curriculum.KindRecall {
				t.Fatalf("seed %d: drew recall question from day %d despite gradeable pool", seed, it.Day)
			}
		}
	}
}

func TestSample_RecallOnlyDayFallsBack(t *testing.T) {
	// Day 4 has only recall prompts; it still contributes one.
	items := Sample(sampleTopics(), 5, 10, 7)
	if len(items) != 4 {
		t.Fatalf("sampled %d items, want 4 (one per day 1-4)", len(items))
	}
	var day4 *Item
	for i := range items {
		if items[i].Day == 4 {
			day4 = &items[i]
		}
	}
	if day4 == nil {
		t.Fatal("day 4 missing from draw")
	}
	if day4.Question.Kind != curriculum.KindRecall {
		t.Errorf("day 4 question kind = %q, want recall", day4.Question.Kind)
	}
}

func TestSample_FirstDayEmpty(t *testing.T) {
	if items := Sample(sampleTopics(), 1, 3, 42); items != nil {
		t.Errorf("day 1 has no earlier material, got %d items", len(items))
	}
}

func TestSample_Deterministic(t *testing.T) {
	a := Sample(sampleTopics(), 5, 3, 7)
	b := Sample(sampleTopics(), 5, 3, 7)
	if len(a) != 3 || len(b) != 3 {
		t.Fatalf("sampled %d and %d items, want 3 each", len(a), len(b))
	}
	for i := range a {
		if a[i].Day != b[i].Day || a[i].Question.ID != b[i].Question.ID {
			t.Fatalf("same seed produced different draws: %+v vs %+v", a[i], b[i])
		}
	}
}

func TestSample_TruncatesToCount(t *testing.T) {
	items := Sample(sampleTopics(), 5, 2, 99)
	if len(items) != 2 {
		t.Fatalf("sampled %d items, want 2", len(items))
	}
}

func TestSample_OrderedOldestFirst(t *testing.T) {
	items := Sample(sampleTopics(), 5, 10, 3)
	for i := 1; i < len(items); i++ {
		if items[i].Day < items[i-1].Day {
			t.Fatalf("items not ordered by day: %d before %d", items[i-1].Day, items[i].Day)
		}
	}
}

func TestSample_ZeroCount(t *testing.T) {
	if items := Sample(sampleTopics(), 5, 0, 1); items != nil {
		t.Errorf("k=0 should sample nothing, got %d", len(items))
	}
}
