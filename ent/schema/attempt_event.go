package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a single answered question within a study session.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("attempt_id").
			NotEmpty().
			Unique().
			Comment("UUID assigned when the attempt was recorded"),
		field.Int("day").
			Min(1).
			Comment("Roadmap day the question belongs to"),
		field.Int("question_id").
			Min(1).
			Comment("1-based question position within the day"),
		field.String("kind").
			NotEmpty().
			Comment("mcq, numeric, or repeat"),
		field.String("prompt").
			NotEmpty().
			Comment("The question shown"),
		field.String("correct_answer").
			Comment("Canonical correct answer for display"),
		field.String("learner_answer").
			Comment("What the learner entered, as typed"),
		field.Bool("correct").
			Comment("Whether the answer matched"),
		field.Bool("graded").
			Comment("False for recall prompts, which never count toward score"),
		field.Bool("warmup").
			Default(false).
			Comment("True for spaced-repetition warm-ups outside progression"),
		field.Int64("time_ms").
			Default(0).
			Comment("Milliseconds to answer"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("day"),
		index.Fields("correct"),
	}
}
