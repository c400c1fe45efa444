// Package review selects warm-up questions from earlier roadmap days.
//
// The sampler is separate from quiz progression: warm-up answers are never
// scored, they only resurface material before the day's fresh questions.
package review

import (
	"math/rand/v2"
	"sort"

	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/curriculum"
)

// DefaultCount is how many warm-up questions a session opens with.
const DefaultCount = 3

// Item is one sampled warm-up question, tagged with its source day.
type Item struct {
	Day      int
	Title    string
	Question curriculum.Question
}

// Sample draws at most one question from each day before currentDay and
// returns up to k of them. Within a day, gradeable questions (multiple
// choice and numeric) are preferred for active recall; a day that holds
// only recall prompts still contributes one. The same seed yields the
// same draw, so a resumed session can reproduce its warm-up.
func Sample(topics []curriculum.Topic, currentDay, k int, seed uint64) []Item {
	if k <= 0 || currentDay <= 1 {
		return nil
	}

	rng := rand.New(rand.NewPCG(seed, seed))

	var picked []Item
	for i := range topics {
		t := &topics[i]
		if t.Day >= currentDay || len(t.Questions) == 0 {
			continue
		}
		pool := gradeable(t.Questions)
		if len(pool) == 0 {
			pool = t.Questions
		}
		q := pool[rng.IntN(len(pool))]
		picked = append(picked, Item{Day: t.Day, Title: t.Title, Question: q})
	}
	if len(picked) == 0 {
		return nil
	}

	rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	if k < len(picked) {
		picked = picked[:k]
	}

	// Present warm-ups oldest material first.
	sort.SliceStable(picked, func(i, j int) bool {
		if picked[i].Day != picked[j].Day {
			return picked[i].Day < picked[j].Day
		}
		return picked[i].Question.ID < picked[j].Question.ID
	})
	return picked
}

// gradeable filters to questions the engine scores.
func gradeable(qs []curriculum.Question) []curriculum.Question {
	var out []curriculum.Question
	for _, q := range qs {
		if q.Kind == curriculum.KindMultipleChoice || q.Kind == curriculum.KindNumeric {
			out = append(out, q)
		}
	}
	return out
}
