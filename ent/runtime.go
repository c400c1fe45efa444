// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/mattmattheisen/smallcap-lab-study-coach/ent/attemptevent"
	"github.com/mattmattheisen/smallcap-lab-study-coach/ent/coachrequestevent"
	"github.com/mattmattheisen/smallcap-lab-study-coach/ent/schema"
	"github.com/mattmattheisen/smallcap-lab-study-coach/ent/sessionevent"
	"github.com/mattmattheisen/smallcap-lab-study-coach/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[0].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescAttemptID is the schema descriptor for attempt_id field.
	attempteventDescAttemptID := attempteventFields[1].Descriptor()
	// attemptevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	attemptevent.AttemptIDValidator = attempteventDescAttemptID.Validators[0].(func(string) error)
	// attempteventDescDay is the schema descriptor for day field.
	attempteventDescDay := attempteventFields[2].Descriptor()
	// attemptevent.DayValidator is a validator for the "day" field. It is called by the builders before save.
	attemptevent.DayValidator = attempteventDescDay.Validators[0].(func(int) error)
	// attempteventDescQuestionID is the schema descriptor for question_id field.
	attempteventDescQuestionID := attempteventFields[3].Descriptor()
	// attemptevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	attemptevent.QuestionIDValidator = attempteventDescQuestionID.Validators[0].(func(int) error)
	// attempteventDescKind is the schema descriptor for kind field.
	attempteventDescKind := attempteventFields[4].Descriptor()
	// attemptevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	attemptevent.KindValidator = attempteventDescKind.Validators[0].(func(string) error)
	// attempteventDescPrompt is the schema descriptor for prompt field.
	attempteventDescPrompt := attempteventFields[5].Descriptor()
	// attemptevent.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	attemptevent.PromptValidator = attempteventDescPrompt.Validators[0].(func(string) error)
	// attempteventDescWarmup is the schema descriptor for warmup field.
	attempteventDescWarmup := attempteventFields[10].Descriptor()
	// attemptevent.DefaultWarmup holds the default value on creation for the warmup field.
	attemptevent.DefaultWarmup = attempteventDescWarmup.Default.(bool)
	// attempteventDescTimeMs is the schema descriptor for time_ms field.
	attempteventDescTimeMs := attempteventFields[11].Descriptor()
	// attemptevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	attemptevent.DefaultTimeMs = attempteventDescTimeMs.Default.(int64)
	coachrequesteventMixin := schema.CoachRequestEvent{}.Mixin()
	coachrequesteventMixinFields0 := coachrequesteventMixin[0].Fields()
	_ = coachrequesteventMixinFields0
	coachrequesteventFields := schema.CoachRequestEvent{}.Fields()
	_ = coachrequesteventFields
	// coachrequesteventDescTimestamp is the schema descriptor for timestamp field.
	coachrequesteventDescTimestamp := coachrequesteventMixinFields0[1].Descriptor()
	// coachrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	coachrequestevent.DefaultTimestamp = coachrequesteventDescTimestamp.Default.(func() time.Time)
	// coachrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	coachrequesteventDescInputTokens := coachrequesteventFields[3].Descriptor()
	// coachrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	coachrequestevent.DefaultInputTokens = coachrequesteventDescInputTokens.Default.(int)
	// coachrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	coachrequesteventDescOutputTokens := coachrequesteventFields[4].Descriptor()
	// coachrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	coachrequestevent.DefaultOutputTokens = coachrequesteventDescOutputTokens.Default.(int)
	// coachrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	coachrequesteventDescLatencyMs := coachrequesteventFields[5].Descriptor()
	// coachrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	coachrequestevent.DefaultLatencyMs = coachrequesteventDescLatencyMs.Default.(int64)
	// coachrequesteventDescErrorMessage is the schema descriptor for error_message field.
	coachrequesteventDescErrorMessage := coachrequesteventFields[7].Descriptor()
	// coachrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	coachrequestevent.DefaultErrorMessage = coachrequesteventDescErrorMessage.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescDay is the schema descriptor for day field.
	sessioneventDescDay := sessioneventFields[2].Descriptor()
	// sessionevent.DayValidator is a validator for the "day" field. It is called by the builders before save.
	sessionevent.DayValidator = sessioneventDescDay.Validators[0].(func(int) error)
	// sessioneventDescQuestionsServed is the schema descriptor for questions_served field.
	sessioneventDescQuestionsServed := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultQuestionsServed holds the default value on creation for the questions_served field.
	sessionevent.DefaultQuestionsServed = sessioneventDescQuestionsServed.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescScore is the schema descriptor for score field.
	sessioneventDescScore := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultScore holds the default value on creation for the score field.
	sessionevent.DefaultScore = sessioneventDescScore.Default.(float64)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
